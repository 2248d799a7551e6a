package suggestions

// Renderer draws a set of rows and reports which one the user activated.
type Renderer interface {
	Render(visible []string, onRowActivated func(string))
}

// Presenter holds the candidate set and the subset currently shown.
type Presenter struct {
	candidates []string
	visible    []string
}

func NewPresenter() *Presenter {
	return &Presenter{
		candidates: []string{},
		visible:    []string{},
	}
}

// SetCandidates replaces the candidate set. Call Recompute to refresh the
// visible rows.
func (p *Presenter) SetCandidates(items []string) {
	p.candidates = append([]string{}, items...)
}

func (p *Presenter) Recompute(query string) []string {
	p.visible = Filter(p.candidates, query)
	return p.Visible()
}

func (p *Presenter) Candidates() []string {
	return append([]string{}, p.candidates...)
}

func (p *Presenter) Visible() []string {
	return append([]string{}, p.visible...)
}
