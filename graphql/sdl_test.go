package graphql

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pgdl/pgdl/pgdl"
)

func generate(t *testing.T, doc *pgdl.Document) (string, pgdl.Diagnostics) {
	var buf bytes.Buffer
	diags, err := Generate(&buf, doc)
	require.NoError(t, err)
	return buf.String(), diags
}

func TestKnowsSince(t *testing.T) {
	doc := &pgdl.Document{Shapes: []pgdl.Shape{{
		TargetNode: "Person",
		Properties: []pgdl.Property{{Name: "age", Datatype: "int"}, {Name: "name"}},
		Edges: []pgdl.Edge{{
			Name: "knows", Node: "Person", Directed: pgdl.Bool(true),
			Relations: []pgdl.Relation{{Name: "since", Datatype: "date"}},
		}},
	}}}
	out, diags := generate(t, doc)
	require.Empty(t, diags)
	require.Contains(t, out, "type Person {\n")
	require.Contains(t, out, "  age: Int\n")
	require.Contains(t, out, "  name: String\n")
	require.Contains(t, out, `  persons: [Person] @relation(name:"knows",direction:OUT) @property(name:"since",datatype:"date")`+"\n")
	require.Contains(t, out, `  personsByKnows: [Person] @relation(name:"knows",direction:IN) @property(name:"since",datatype:"date")`+"\n")
}

func TestDirections(t *testing.T) {
	doc := &pgdl.Document{Shapes: []pgdl.Shape{
		{
			TargetNode: "Person",
			Edges: []pgdl.Edge{
				{Name: "worksFor", Node: "Company", Directed: pgdl.Bool(true)},
				{Name: "partner", Node: "Company", Directed: pgdl.Bool(false)},
				{Name: "visited", Node: "Company"},
			},
		},
		{
			TargetNode: "Company",
			Properties: []pgdl.Property{{Name: "revenue", Datatype: "decimal"}},
		},
	}}
	out, diags := generate(t, doc)
	require.Empty(t, diags)
	require.Contains(t, out, `  companys: [Company] @relation(name:"worksFor",direction:OUT)`+"\n")
	require.Contains(t, out, `  companysPartner: [Company] @relation(name:"partner",direction:BOTH)`+"\n")
	require.Contains(t, out, `  companysVisited: [Company] @relation(name:"visited")`+"\n")
	require.Contains(t, out, "  revenue: Float\n")
	require.Contains(t, out, `  personsByWorksFor: [Person] @relation(name:"worksFor",direction:IN)`+"\n")
	require.NotContains(t, out, "personsByPartner")
	require.NotContains(t, out, "personsByVisited")
}

func TestBuildTwoPass(t *testing.T) {
	// The edge source is declared before its target shape.
	doc := &pgdl.Document{Shapes: []pgdl.Shape{
		{TargetNode: "A", Edges: []pgdl.Edge{{Name: "to", Node: "B", Directed: pgdl.Bool(true)}}},
		{TargetNode: "B", Properties: []pgdl.Property{{Name: "x"}}},
	}}
	s, diags := Build(doc)
	require.Empty(t, diags)
	require.Len(t, s.Objects, 2)
	b := s.Objects[1]
	require.Equal(t, "B", b.Name)
	require.Equal(t, []Field{
		{Name: "x", Type: "String"},
		{Name: "asByTo", Type: "[A]", Directives: []string{`@relation(name:"to",direction:IN)`}},
	}, b.Fields)
	require.NoError(t, s.Validate())
}

func TestUnknownAndMissing(t *testing.T) {
	doc := &pgdl.Document{Shapes: []pgdl.Shape{
		{
			TargetNode: "Person",
			Properties: []pgdl.Property{{Name: "code", Datatype: "varchar"}, {Datatype: "int"}},
			Edges: []pgdl.Edge{
				{Name: "owns", Node: "Car"},
				{Node: "Person"},
			},
		},
		{Properties: []pgdl.Property{{Name: "lost"}}},
	}}
	out, diags := generate(t, doc)
	require.Equal(t, 1, diags.Count(pgdl.UnknownDatatype))
	require.Equal(t, 3, diags.Count(pgdl.MissingField))
	require.Equal(t, 1, diags.Count(pgdl.Limitation), "Car has no shape")
	require.Contains(t, out, "scalar Car\n")
	require.Contains(t, out, "  code: String\n")
	require.Contains(t, out, `  cars: [Car] @relation(name:"owns")`)
	require.Equal(t, 1, strings.Count(out, "type "))
}

func TestNames(t *testing.T) {
	require.Equal(t, "has_name", fieldName("has name"))
	require.Equal(t, "_1st", fieldName("1st"))
	require.Equal(t, "Blog_post", typeName("blog-post"))
	require.Equal(t, "_", fieldName(""))

	o := &Object{names: make(map[string]struct{})}
	o.add(Field{Name: "persons"}, "knows")
	o.add(Field{Name: "persons"}, "knows")
	o.add(Field{Name: "persons"}, "knows")
	var names []string
	for _, f := range o.Fields {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{"persons", "personsKnows", "persons2"}, names)
}

func TestEmptyShape(t *testing.T) {
	doc := &pgdl.Document{Shapes: []pgdl.Shape{
		{TargetNode: "Person", Edges: []pgdl.Edge{{Name: "worksFor", Node: "Company"}}},
		{TargetNode: "Company"},
	}}
	s, diags := Build(doc)
	require.Equal(t, 1, diags.Count(pgdl.Limitation))
	require.Equal(t, "shapes[1]", diags[0].Path)
	require.Len(t, s.Objects, 1)
	require.Equal(t, []string{"Company"}, s.Scalars)
	require.NoError(t, s.Validate())

	out, diags := generate(t, doc)
	require.Len(t, diags, 1)
	require.Contains(t, out, "scalar Company\n")
	require.NotContains(t, out, "type Company")
	require.Contains(t, out, `  companys: [Company] @relation(name:"worksFor")`)
}

func TestTypeNameCollision(t *testing.T) {
	doc := &pgdl.Document{Shapes: []pgdl.Shape{
		{TargetNode: "blog-post", Properties: []pgdl.Property{{Name: "title"}}},
		{TargetNode: "blog_post", Properties: []pgdl.Property{{Name: "body"}},
			Edges: []pgdl.Edge{{Name: "cites", Node: "blog-post", Directed: pgdl.Bool(true)}}},
		{TargetNode: "String", Properties: []pgdl.Property{{Name: "x"}}},
	}}
	s, diags := Build(doc)
	require.Equal(t, 2, diags.Count(pgdl.Limitation))
	var names []string
	for _, o := range s.Objects {
		names = append(names, o.Name)
	}
	require.Equal(t, []string{"Blog_post", "Blog_post2", "String2"}, names)
	require.Equal(t, Field{Name: "blog_postsByCites", Type: "[Blog_post2]",
		Directives: []string{`@relation(name:"cites",direction:IN)`}}, s.Objects[0].Fields[1])
	require.Equal(t, "[Blog_post]", s.Objects[1].Fields[1].Type)
	require.NoError(t, s.Validate())
}
