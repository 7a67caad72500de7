package ftl

// Text creates a text-only result envelope.
func Text(text string) *Result {
	return &Result{Content: []Content{TextContent(text)}}
}

// Errorf creates an error result envelope with a single text block.
func Errorf(message string) *Result {
	return &Result{
		Content: []Content{TextContent(message)},
		IsError: true,
	}
}

// WithStructured creates a result envelope pairing a text rendering with
// structured content.
func WithStructured(text string, structured any) *Result {
	return &Result{
		Content:           []Content{TextContent(text)},
		StructuredContent: structured,
	}
}

// AddText appends a text content block and returns the result for chaining.
func (r *Result) AddText(text string) *Result {
	r.Content = append(r.Content, TextContent(text))
	return r
}

// AddImage appends an image content block.
func (r *Result) AddImage(data, mimeType string) *Result {
	r.Content = append(r.Content, ImageContent(data, mimeType))
	return r
}

// AddAudio appends an audio content block.
func (r *Result) AddAudio(data, mimeType string) *Result {
	r.Content = append(r.Content, AudioContent(data, mimeType))
	return r
}

// AddResource appends a resource content block.
func (r *Result) AddResource(resource map[string]any) *Result {
	r.Content = append(r.Content, ResourceContent(resource))
	return r
}

// SetStructured attaches structured content.
func (r *Result) SetStructured(structured any) *Result {
	r.StructuredContent = structured
	return r
}

// SetProgress attaches a progress value, clamped to [0, 100].
func (r *Result) SetProgress(progress float64) *Result {
	if progress < 0 {
		progress = 0
	} else if progress > 100 {
		progress = 100
	}
	r.Progress = &progress
	return r
}

// SetMeta merges entries into the result's metadata.
func (r *Result) SetMeta(meta map[string]any) *Result {
	if r.Meta == nil {
		r.Meta = make(map[string]any, len(meta))
	}
	for k, v := range meta {
		r.Meta[k] = v
	}
	return r
}
