package sax

// SAX2 is a ContentHandler backed by callbacks. Unset callbacks
// silently accept the event.
type SAX2 struct {
	StartDocumentHandler StartDocumentFunc
	EndDocumentHandler   EndDocumentFunc
	StartElementHandler  StartElementFunc
	CharactersHandler    CharactersFunc
	EndElementHandler    EndElementFunc
}

var _ ContentHandler = (*SAX2)(nil)

// New creates a new instance of SAX2. All callbacks are
// uninitialized.
func New() *SAX2 {
	return &SAX2{}
}

func (s *SAX2) StartDocument(ctx Context) error {
	if h := s.StartDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *SAX2) EndDocument(ctx Context) error {
	if h := s.EndDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *SAX2) StartElement(ctx Context, name string) error {
	if h := s.StartElementHandler; h != nil {
		return h(ctx, name)
	}
	return nil
}

func (s *SAX2) Characters(ctx Context, data []byte) error {
	if h := s.CharactersHandler; h != nil {
		return h(ctx, data)
	}
	return nil
}

func (s *SAX2) EndElement(ctx Context, name string) error {
	if h := s.EndElementHandler; h != nil {
		return h(ctx, name)
	}
	return nil
}
