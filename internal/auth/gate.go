package auth

import "strings"

// Gate decides, per request path, whether the caller may proceed or must be
// sent elsewhere.
type Gate struct {
	LoginPath       string
	ProtectedPrefix string
}

// NewGate returns the dashboard gate: /dashboard is protected, /login signs in.
func NewGate() Gate {
	return Gate{LoginPath: "/login", ProtectedPrefix: "/dashboard"}
}

// Decision is the outcome of Authorize. An empty RedirectTo means proceed.
type Decision struct {
	RedirectTo string
}

// Allowed reports whether the request may proceed.
func (d Decision) Allowed() bool {
	return d.RedirectTo == ""
}

// Authorize applies the route rules: protected paths need a session, and a
// signed-in user hitting any other gated page (the login page included) is
// sent to the protected area.
func (g Gate) Authorize(path string, authenticated bool) Decision {
	if g.isProtected(path) {
		if authenticated {
			return Decision{}
		}
		return Decision{RedirectTo: g.LoginPath}
	}
	if authenticated {
		return Decision{RedirectTo: g.ProtectedPrefix}
	}
	return Decision{}
}

func (g Gate) isProtected(path string) bool {
	return path == g.ProtectedPrefix || strings.HasPrefix(path, g.ProtectedPrefix+"/")
}
