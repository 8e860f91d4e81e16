package axes

// Deleter is a GPU resource such as a program or a geometry buffer.
type Deleter interface {
	Delete()
}

// Destroyer is the window that owns the GL context.
type Destroyer interface {
	Destroy()
}

// Teardown releases GPU resources in reverse order of registration, then
// destroys the window. The context stays current until every resource is gone.
type Teardown struct {
	window    Destroyer
	resources []Deleter
	released  bool
}

// NewTeardown creates a Teardown for window. A nil window is allowed.
func NewTeardown(window Destroyer) *Teardown {
	return &Teardown{window: window}
}

// Add registers a resource. Nil resources are ignored.
func (t *Teardown) Add(d Deleter) {
	if d == nil {
		return
	}
	t.resources = append(t.resources, d)
}

// Release deletes every resource once and destroys the window once.
// Later calls do nothing.
func (t *Teardown) Release() {
	if t.released {
		return
	}
	t.released = true

	for i := len(t.resources) - 1; i >= 0; i-- {
		t.resources[i].Delete()
	}
	t.resources = nil

	if t.window != nil {
		t.window.Destroy()
	}
}
