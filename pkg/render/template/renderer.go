package template

// TemplateRenderer executes a named template against view data. Values in
// data reach the template unchanged, so strings keep their exact bytes.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
}
