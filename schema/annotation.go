package schema

// Annotation is used to attach arbitrary metadata to enum definitions.
// The metadata is exposed to the code generation under the annotation name,
// allowing extensions (e.g. contrib/graphql) to change the generated output.
//
// An example of an annotation provided by this module:
//
//	enum.Uint8("LightsView").
//	    Values("Isometric", "FirstPerson").
//	    Annotations(graphql.Type("ViewMode"))
type Annotation interface {
	// Name defines the name of the annotation to be retrieved by the codegen.
	Name() string
}

// Merger wraps the single Merge function allowing an annotation to merge
// itself with another annotation of the same kind. Annotations that do not
// implement Merger are overwritten by later definitions with the same name.
type Merger interface {
	Merge(Annotation) Annotation
}

// CommentAnnotation is a builtin schema annotation for attaching comments
// to generated enum declarations.
type CommentAnnotation struct {
	Text string `json:"text,omitempty"`
}

// Name implements the Annotation interface.
func (*CommentAnnotation) Name() string {
	return "Comment"
}

// Comment is a builtin annotation for attaching a doc comment to the
// generated enum type.
func Comment(text string) *CommentAnnotation {
	return &CommentAnnotation{Text: text}
}

var _ Annotation = (*CommentAnnotation)(nil)
