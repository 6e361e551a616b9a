package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// AuthForm carries what the auth pages echo back after a failed submit.
type AuthForm struct {
	Name    string
	Email   string
	Token   string
	Problem string
}

func field(label, name, typ, value, placeholder string) g.Node {
	return h.Div(
		h.Label(h.For(name), h.Class("block text-sm font-medium text-gray-700"), g.Text(label)),
		h.Input(
			h.ID(name), h.Name(name), h.Type(typ), h.Value(value),
			h.Placeholder(placeholder), h.Class("form-input"), h.Required(),
		),
	)
}

func authCard(title, subtitle string, problem string, body ...g.Node) g.Node {
	return h.Div(
		h.Class("max-w-md mx-auto my-16 bg-white rounded-lg shadow p-8"),
		h.H1(h.Class("text-2xl font-bold text-center"), g.Text(title)),
		h.P(h.Class("mt-2 mb-6 text-center text-gray-600"), g.Text(subtitle)),
		g.If(problem != "", h.Div(h.Role("alert"), h.Class("flash flash-error mb-4"), g.Text(problem))),
		g.Group(body),
	)
}

// Login is the sign-in page.
func Login(f AuthForm) g.Node {
	return authCard("Sign in to your account", "Welcome back to NexCard", f.Problem,
		h.Form(
			h.Method("post"), h.Action("/auth/login"), h.Class("space-y-4"),
			field("Email Address", "email", "email", f.Email, "you@example.com"),
			field("Password", "password", "password", "", ""),
			h.Div(
				h.Class("text-right text-sm"),
				h.A(h.Href("/auth/forgot-password"), h.Class("text-indigo-600"), g.Text("Forgot your password?")),
			),
			h.Button(h.Type("submit"), h.Class("btn-primary w-full justify-center"), g.Text("Sign In")),
		),
		h.P(
			h.Class("mt-6 text-center text-sm text-gray-600"),
			g.Text("Don't have an account? "),
			h.A(h.Href("/auth/register"), h.Class("text-indigo-600"), g.Text("Sign up")),
		),
	)
}

// Register is the sign-up page.
func Register(f AuthForm) g.Node {
	return authCard("Create your account", "Start sharing your digital business card", f.Problem,
		h.Form(
			h.Method("post"), h.Action("/auth/register"), h.Class("space-y-4"),
			field("Full Name", "name", "text", f.Name, "John Doe"),
			field("Email Address", "email", "email", f.Email, "you@example.com"),
			field("Password", "password", "password", "", ""),
			field("Confirm Password", "password_confirm", "password", "", ""),
			h.Button(h.Type("submit"), h.Class("btn-primary w-full justify-center"), g.Text("Create Account")),
		),
		h.P(
			h.Class("mt-6 text-center text-sm text-gray-600"),
			g.Text("Already have an account? "),
			h.A(h.Href("/auth/login"), h.Class("text-indigo-600"), g.Text("Sign in")),
		),
	)
}

// ForgotPassword asks for the address to send a reset link to.
func ForgotPassword(f AuthForm) g.Node {
	return authCard("Reset your password", "We'll email you a link to choose a new one", f.Problem,
		h.Form(
			h.Method("post"), h.Action("/auth/forgot-password"), h.Class("space-y-4"),
			field("Email Address", "email", "email", f.Email, "you@example.com"),
			h.Button(h.Type("submit"), h.Class("btn-primary w-full justify-center"), g.Text("Send Reset Link")),
		),
	)
}

// ResetPassword sets a new password for a reset token.
func ResetPassword(f AuthForm) g.Node {
	return authCard("Choose a new password", "Enter and confirm your new password", f.Problem,
		h.Form(
			h.Method("post"), h.Action("/auth/reset-password"), h.Class("space-y-4"),
			h.Input(h.Type("hidden"), h.Name("token"), h.Value(f.Token)),
			field("New Password", "password", "password", "", ""),
			field("Confirm Password", "password_confirm", "password", "", ""),
			h.Button(h.Type("submit"), h.Class("btn-primary w-full justify-center"), g.Text("Reset Password")),
		),
	)
}
