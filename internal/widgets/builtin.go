package widgets

// RegisterBuiltIn fills a registry with the stock demo widgets, seeded with
// fixture content so each renders something meaningful in isolation.
func RegisterBuiltIn(registry *Registry) {
	if registry == nil {
		return
	}

	search := NewSearchResults([]SearchResult{
		{Permalink: "https://example.com/posts/readability", Title: "Improve readability"},
		{Permalink: "https://example.com/posts/internal-links", Title: "Internal linking basics"},
		{Permalink: "https://example.com/posts/meta-descriptions", Title: "Writing meta descriptions"},
	}, "seo")
	registry.Register(search.Descriptor())

	registry.Register(NewButtons().Descriptor())

	wizard := NewWizard([]WizardStep{
		{Label: "Choose a focus keyphrase"},
		{Label: "Write the snippet"},
		{Label: "Review and publish"},
	})
	registry.Register(wizard.Descriptor())

	snippet := NewSnippetEditor(SnippetPreview{
		Title:       "Hello World!",
		Description: "A <strong>short</strong> description of the page.",
	})
	registry.Register(snippet.Descriptor())
}
