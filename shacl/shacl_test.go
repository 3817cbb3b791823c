package shacl

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgdl/pgdl/pgdl"
	"github.com/pgdl/pgdl/voc/dct"
	"github.com/pgdl/pgdl/voc/pg"
)

func person() *pgdl.Document {
	return &pgdl.Document{
		Metadata: pgdl.Metadata{
			"created": {"2024-01-02"},
			"creator": {"Jane Doe"},
			"title":   {"People", "Personen"},
			"seeAlso": {"http://example.com/people"},
		},
		Shapes: []pgdl.Shape{
			{
				TargetNode: "Person",
				Properties: []pgdl.Property{
					{Name: "age", Datatype: "int"},
					{Name: "nickname"},
				},
				Edges: []pgdl.Edge{
					{Name: "knows", Node: "Person", Directed: pgdl.Bool(true),
						Relations: []pgdl.Relation{{Name: "since", Datatype: "date"}}},
					{Name: "sibling", Node: "Person", Directed: pgdl.Bool(false)},
					{Name: "likes", Node: "Company",
						Relations: []pgdl.Relation{{Name: "weight"}}},
				},
			},
			{
				TargetNode: "Company",
				Properties: []pgdl.Property{{Name: "founded", Datatype: "dateTime"}},
			},
		},
	}
}

func TestPersonAge(t *testing.T) {
	doc := &pgdl.Document{Shapes: []pgdl.Shape{{
		TargetNode: "Person",
		Properties: []pgdl.Property{{Name: "age", Datatype: "int"}},
	}}}
	g, _ := ToShacl(doc)

	shapes := g.Subjects(rdfType, shNodeShape)
	require.Len(t, shapes, 1)

	tn, ok := g.Object(shapes[0], shTargetNode)
	require.True(t, ok)
	require.Equal(t, quad.IRI(pg.NS+"Person"), tn)

	props := g.Objects(shapes[0], shProperty)
	require.Len(t, props, 1)
	_, isBlank := props[0].(quad.BNode)
	require.True(t, isBlank)
	path, _ := g.Object(props[0], shPath)
	require.Equal(t, quad.IRI(pg.NS+"age"), path)
	dt, _ := g.Object(props[0], shDatatype)
	require.Equal(t, pgdl.Int.XSD(), dt)

	var buf bytes.Buffer
	require.NoError(t, WriteTurtle(context.Background(), &buf, g, TurtleOptions{}))
	out := buf.String()
	require.Contains(t, out, "@prefix sh: <http://www.w3.org/ns/shacl#> .")
	require.Contains(t, out, "sh:targetNode pg:Person")
	require.Contains(t, out, "sh:path pg:age")
	require.Contains(t, out, "sh:datatype xsd:int")
}

func TestDistinctShapeSubjects(t *testing.T) {
	doc := &pgdl.Document{}
	for i := 0; i < 50; i++ {
		doc.Shapes = append(doc.Shapes, pgdl.Shape{
			TargetNode: fmt.Sprintf("T%d", i),
			Properties: []pgdl.Property{{Name: "p"}},
		})
	}
	for _, tr := range []*Translator{{}, {NewIDs: NewRandom}} {
		g, diags := tr.ToShacl(doc)
		require.Len(t, diags, 2, "created and creator are missing")
		shapes := g.Subjects(rdfType, shNodeShape)
		require.Len(t, shapes, len(doc.Shapes))
		for _, s := range shapes {
			require.Len(t, g.Objects(s, shTargetNode), 1)
			require.Len(t, g.Objects(s, shProperty), 1)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	doc := person()
	g, diags := ToShacl(doc)
	require.Empty(t, diags)

	back, diags := ToPgdl(g)
	require.Empty(t, diags)
	require.Equal(t, doc, back)
}

func TestTurtleRoundTrip(t *testing.T) {
	ctx := context.Background()
	doc := person()
	g, _ := ToShacl(doc)

	var buf bytes.Buffer
	require.NoError(t, WriteTurtle(ctx, &buf, g, TurtleOptions{}))

	g2, err := ReadTurtle(ctx, &buf)
	require.NoError(t, err)
	require.Equal(t, g.Len(), g2.Len())

	back, diags := ToPgdl(g2)
	require.Empty(t, diags)
	require.Equal(t, doc, back)
}

func TestReadTurtleError(t *testing.T) {
	_, err := ReadTurtle(context.Background(), strings.NewReader("@prefix sh: <http://www.w3.org/ns/shacl#> .\n_:a sh:path "))
	require.ErrorIs(t, err, pgdl.ErrParse)
}

func TestOmittedDatatype(t *testing.T) {
	doc := &pgdl.Document{Shapes: []pgdl.Shape{{
		TargetNode: "Person",
		Properties: []pgdl.Property{{Name: "nickname"}},
	}}}
	g, _ := ToShacl(doc)
	for _, q := range g.Quads() {
		require.NotEqual(t, shDatatype, q.Predicate)
	}
	back, diags := ToPgdl(g)
	require.Empty(t, diags)
	require.Equal(t, pgdl.TypeName(""), back.Shapes[0].Properties[0].Datatype)
	require.True(t, back.Shapes[0].Properties[0].Datatype.Absent())
}

func TestMetadataCardinality(t *testing.T) {
	creator := quad.IRI(dct.Creator)
	for _, n := range []int{1, 2, 3} {
		g := NewGraph()
		doc := quad.BNode("doc")
		for i := 0; i < n; i++ {
			g.Add(doc, creator, quad.String(fmt.Sprintf("author %d", i)))
		}
		back, _ := ToPgdl(g)
		v := back.Metadata["creator"]
		require.Len(t, v, n)
		_, scalar := v.Scalar()
		require.Equal(t, n == 1, scalar)

		g2, _ := ToShacl(back)
		docs := g2.Subjects(creator, nil)
		require.Len(t, docs, 1)
		require.Len(t, g2.Objects(docs[0], creator), n)
	}
}

func TestMetadataDuplicateValues(t *testing.T) {
	// A graph is a set: repeated values collapse to one triple.
	doc := &pgdl.Document{Metadata: pgdl.Metadata{
		"created": {"2024-01-02"},
		"creator": {"Jane Doe"},
		"title":   {"People", "People"},
	}}
	g, diags := ToShacl(doc)
	require.Empty(t, diags)
	title, _ := LookupTerm("title")
	docs := g.Subjects(title.IRI, nil)
	require.Len(t, docs, 1)
	require.Len(t, g.Objects(docs[0], title.IRI), 1)

	back, _ := ToPgdl(g)
	v, scalar := back.Metadata["title"].Scalar()
	require.True(t, scalar)
	require.Equal(t, "People", v)
}

func TestMetadataFromAnySubject(t *testing.T) {
	title, _ := LookupTerm("title")
	g := NewGraph()
	g.Add(quad.BNode("doc"), quad.IRI(dct.Created), quad.String("2024-01-02"))
	g.Add(quad.IRI("http://example.com/ns#Person"), title.IRI, quad.String("Person"))

	doc, _ := ToPgdl(g)
	require.Equal(t, pgdl.Metadata{
		"created": {"2024-01-02"},
		"title":   {"Person"},
	}, doc.Metadata)
}

func TestMetadataTerms(t *testing.T) {
	doc := &pgdl.Document{Metadata: pgdl.Metadata{
		"created":     {"2024-01-02"},
		"seeAlso":     {"http://example.com/a", "not an iri"},
		"versionInfo": {"1.0"},
		"prefLabel":   {"People"},
		"color":       {"blue"},
	}}
	g, diags := ToShacl(doc)
	require.Equal(t, 1, diags.Count(pgdl.UnknownTerm))
	require.Equal(t, 1, diags.Count(pgdl.MissingField), "creator")

	docs := g.Subjects(quad.IRI(dct.Created), nil)
	require.Len(t, docs, 1)
	created, _ := g.Object(docs[0], quad.IRI(dct.Created))
	require.Equal(t, quad.TypedString{Value: "2024-01-02", Type: xsdDate}, created)

	seeAlso, _ := LookupTerm("seeAlso")
	require.Equal(t, []quad.Value{
		quad.IRI("http://example.com/a"),
		quad.String("not an iri"),
	}, g.Objects(docs[0], seeAlso.IRI))

	back, _ := ToPgdl(g)
	delete(doc.Metadata, "color")
	require.Equal(t, doc.Metadata, back.Metadata)
}

func TestMultipleRelations(t *testing.T) {
	doc := &pgdl.Document{Shapes: []pgdl.Shape{{
		TargetNode: "Person",
		Edges: []pgdl.Edge{{Name: "knows", Node: "Person", Relations: []pgdl.Relation{
			{Name: "since", Datatype: "date"},
			{Name: "weight", Datatype: "float"},
		}}},
	}}}
	g, diags := ToShacl(doc)
	require.Equal(t, 1, diags.Count(pgdl.Limitation))

	edge := g.Objects(g.Subjects(rdfType, shNodeShape)[0], shProperty)[0]
	rels := g.Objects(edge, pgshRelation)
	require.Len(t, rels, 1, "relations share a single node")
	require.Len(t, g.Objects(rels[0], pgshKey), 2)

	back, diags := ToPgdl(g)
	require.Equal(t, 2, diags.Count(pgdl.Limitation))
	require.Equal(t, []pgdl.Relation{{Name: "since", Datatype: "date"}}, back.Shapes[0].Edges[0].Relations)
}

func TestMissingFields(t *testing.T) {
	doc := &pgdl.Document{
		Metadata: pgdl.Metadata{"created": {"2024-01-02"}, "creator": {"x"}},
		Shapes: []pgdl.Shape{
			{
				Properties: []pgdl.Property{{Datatype: "int"}, {Name: "ok", Datatype: "varchar"}},
				Edges: []pgdl.Edge{
					{Node: "A"},
					{Name: "e", Relations: []pgdl.Relation{{Datatype: "int"}}},
				},
			},
			{TargetNode: "B"},
		},
	}
	g, diags := ToShacl(doc)
	var paths []string
	for _, d := range diags {
		paths = append(paths, d.Kind.String()+" "+d.Path)
	}
	require.Equal(t, []string{
		"missing field shapes[0].targetNode",
		"missing field shapes[0].properties[0].name",
		"unknown datatype shapes[0].properties[1].datatype",
		"missing field shapes[0].edges[0].name",
		"missing field shapes[0].edges[1].node",
		"missing field shapes[0].edges[1].relations[0].name",
	}, paths)

	back, diags := ToPgdl(g)
	require.Len(t, back.Shapes, 2)
	require.Equal(t, pgdl.Shape{
		Properties: []pgdl.Property{{Name: "ok"}},
		Edges:      []pgdl.Edge{{Name: "e"}},
	}, back.Shapes[0])
	require.Equal(t, "B", back.Shapes[1].TargetNode)
	require.Equal(t, 2, diags.Count(pgdl.MissingField), "targetNode and node")
}

func TestDecodeUnknownDatatype(t *testing.T) {
	g := NewGraph()
	s := quad.IRI("http://example.com/PersonShape")
	p := quad.BNode("p")
	g.Add(s, rdfType, shNodeShape)
	g.Add(s, shTargetClass, quad.IRI("http://example.com/ns#Person"))
	g.Add(s, shProperty, p)
	g.Add(p, shPath, quad.IRI("http://example.com/ns#age"))
	g.Add(p, shDatatype, quad.IRI("http://www.w3.org/2001/XMLSchema#long"))
	g.Add(s, shProperty, quad.BNode("nopath"))
	g.Add(quad.BNode("nopath"), shDatatype, quad.IRI("http://www.w3.org/2001/XMLSchema#int"))

	doc, diags := ToPgdl(g)
	require.Equal(t, []pgdl.Shape{{
		TargetNode: "Person",
		Properties: []pgdl.Property{{Name: "age"}},
	}}, doc.Shapes)
	require.Equal(t, 1, diags.Count(pgdl.UnknownDatatype))
	require.Equal(t, 1, diags.Count(pgdl.MissingField))
	require.Empty(t, doc.Metadata)
}

var casesNames = []struct {
	name string
	iri  string
}{
	{"Person", "urn:pg:1.0:Person"},
	{"has name", "urn:pg:1.0:has%20name"},
	{"a/b", "urn:pg:1.0:a%2Fb"},
	{"a#b", "urn:pg:1.0:a%23b"},
	{"ex:Person", "urn:pg:1.0:ex%3APerson"},
}

func TestNames(t *testing.T) {
	tr := &Translator{}
	for _, c := range casesNames {
		iri := tr.nameIRI(c.name)
		require.Equal(t, quad.IRI(c.iri), iri)
		require.Equal(t, c.name, LastSegment(string(iri)))
	}
	require.Equal(t, "Person", LastSegment("http://example.com/ns/Person"))
	require.Equal(t, "Person", LastSegment("http://example.com/ns#Person"))
	require.Equal(t, "Person", LastSegment("ex:Person"))
}

func TestCustomNamespace(t *testing.T) {
	tr := &Translator{Namespace: "http://example.com/schema#"}
	g, _ := tr.ToShacl(&pgdl.Document{Shapes: []pgdl.Shape{{TargetNode: "Person"}}})
	s := g.Subjects(rdfType, shNodeShape)[0]
	tn, _ := g.Object(s, shTargetNode)
	require.Equal(t, quad.IRI("http://example.com/schema#Person"), tn)

	doc, _ := tr.ToPgdl(g)
	require.Equal(t, "Person", doc.Shapes[0].TargetNode)

	// no separator at the end of the namespace
	tr = &Translator{Namespace: "http://example.com/schema"}
	g, _ = tr.ToShacl(&pgdl.Document{Shapes: []pgdl.Shape{{TargetNode: "Person"}}})
	s = g.Subjects(rdfType, shNodeShape)[0]
	tn, _ = g.Object(s, shTargetNode)
	require.Equal(t, quad.IRI("http://example.com/schema#Person"), tn)
	doc, _ = tr.ToPgdl(g)
	require.Equal(t, "Person", doc.Shapes[0].TargetNode)

	require.Equal(t, "urn:x:", CleanNamespace("urn:x:"))
	require.Equal(t, "", CleanNamespace(""))
}

func TestConcurrentConversions(t *testing.T) {
	doc := person()
	want, _ := ToShacl(doc)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g, _ := ToShacl(doc)
			assert.Equal(t, want.Quads(), g.Quads())
		}()
	}
	wg.Wait()
}

func TestGraph(t *testing.T) {
	g := NewGraph()
	s := quad.IRI("sh:x")
	require.True(t, g.Add(s, quad.IRI("sh:path"), quad.String("a")))
	require.False(t, g.Add(quad.IRI("http://www.w3.org/ns/shacl#x"), shPath, quad.String("a")), "prefixed and full IRIs are the same term")
	n, err := g.WriteQuads([]quad.Quad{
		{Subject: s, Predicate: shPath, Object: quad.String("b"), Label: quad.IRI("ignored")},
	})
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 2, g.Len())
	require.Equal(t, []quad.Value{quad.String("a"), quad.String("b")}, g.Objects(s, shPath))
	require.Nil(t, g.Quads()[1].Label)

	require.Error(t, g.WriteQuad(quad.Quad{Subject: s}))
	require.Len(t, g.AllSubjects(), 1)
}

func TestExport(t *testing.T) {
	g, _ := ToShacl(&pgdl.Document{Shapes: []pgdl.Shape{{
		TargetNode: "Person",
		Properties: []pgdl.Property{{Name: "age", Datatype: "int"}},
	}}})

	var buf bytes.Buffer
	require.NoError(t, WriteQuads(&buf, g, "nquads"))
	require.Contains(t, buf.String(), "<urn:pg:1.0:Shape1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/ns/shacl#NodeShape> .")
	require.Equal(t, g.Len(), strings.Count(buf.String(), "\n"))

	require.Error(t, WriteQuads(&buf, g, "nope"))

	buf.Reset()
	require.NoError(t, WriteJSONLD(&buf, g, nil))
	out := buf.String()
	require.Contains(t, out, `"@context"`)
	require.Contains(t, out, `"sh": "http://www.w3.org/ns/shacl#"`)
	require.Contains(t, out, "pg:Shape1")
}
