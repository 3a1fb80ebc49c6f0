package test

// ViewInvalidatorStub records which cached views were invalidated.
type ViewInvalidatorStub struct {
	Invalidated []string
}

// Invalidate appends the path to the recorded list.
func (s *ViewInvalidatorStub) Invalidate(path string) {
	s.Invalidated = append(s.Invalidated, path)
}
