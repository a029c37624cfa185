package view

import "errors"

var ErrInvalidView = errors.New("invalid view")

type View string

const (
	ViewHome       View = "home"
	ViewMyBookings View = "my_bookings"
	ViewPlans      View = "plans"
)

func (v View) String() string {
	return string(v)
}

func (v View) IsValid() bool {
	switch v {
	case ViewHome, ViewMyBookings, ViewPlans:
		return true
	default:
		return false
	}
}

func NewView(s string) (View, error) {
	v := View(s)
	if !v.IsValid() {
		return "", ErrInvalidView
	}
	return v, nil
}

// Router is the top-level navigation state machine. Every view is reachable
// from every other view with no guards; Home is initial and there is no
// terminal state.
type Router struct {
	current  View
	anchor   string
	onChange func(View)
}

func NewRouter() *Router {
	return &Router{current: ViewHome}
}

// OnChange registers a single observer notified after each completed
// transition. Scroll moves do not notify: they are not transitions.
func (r *Router) OnChange(fn func(View)) {
	r.onChange = fn
}

func (r *Router) Navigate(v View) error {
	if !v.IsValid() {
		return ErrInvalidView
	}
	r.current = v
	r.anchor = ""
	if r.onChange != nil {
		r.onChange(v)
	}
	return nil
}

// ScrollTo moves the Home scroll anchor without leaving Home. It is a no-op on
// the state machine itself.
func (r *Router) ScrollTo(anchor string) {
	r.current = ViewHome
	r.anchor = anchor
}

func (r *Router) Current() View  { return r.current }
func (r *Router) Anchor() string { return r.anchor }
