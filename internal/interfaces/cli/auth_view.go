package cli

import (
	"fmt"

	"github.com/stockmaster/stockmaster/internal/application/auth"
)

// authGate conduce el flujo de acceso simulado hasta abrir sesión. Devuelve
// false solo si la entrada se agota (EOF) antes de autenticar.
func (a *App) authGate() bool {
	flow := a.deps.Session
	fmt.Fprintln(a.out, "StockMaster — acceso")

	for !flow.Authenticated() {
		switch flow.View() {
		case auth.ViewLogin:
			if !a.loginView(flow) {
				return false
			}
		case auth.ViewSignup:
			if !a.signupView(flow) {
				return false
			}
		case auth.ViewForgotPassword:
			if !a.forgotPasswordView(flow) {
				return false
			}
		case auth.ViewOTP:
			if !a.otpView(flow) {
				return false
			}
		case auth.ViewResetPassword:
			if !a.resetPasswordView(flow) {
				return false
			}
		}
	}
	return true
}

func (a *App) loginView(flow *auth.SessionFlow) bool {
	fmt.Fprintln(a.out, `
[Login]  Enter para continuar; "signup" o "forgot" para cambiar de vista.`)
	email := a.prompt("Email: ")
	switch email {
	case "signup":
		flow.GoToSignup()
		return true
	case "forgot":
		flow.GoToForgotPassword()
		return true
	}
	password, ok := a.promptRequired("Contraseña: ")
	if !ok {
		return false
	}
	flow.Login(email, password)
	return true
}

func (a *App) signupView(flow *auth.SessionFlow) bool {
	fmt.Fprintln(a.out, `
[Registro]  "back" para volver al login.`)
	name := a.prompt("Nombre: ")
	if name == "back" {
		flow.GoToLogin()
		return true
	}
	email := a.prompt("Email: ")
	password, ok := a.promptRequired("Contraseña: ")
	if !ok {
		return false
	}
	flow.Signup(name, email, password)
	return true
}

func (a *App) forgotPasswordView(flow *auth.SessionFlow) bool {
	fmt.Fprintln(a.out, `
[Recuperar contraseña]  "back" para volver al login.`)
	email := a.prompt("Email: ")
	if email == "back" {
		flow.GoToLogin()
		return true
	}
	flow.SendRecoveryCode(email)
	fmt.Fprintln(a.out, "Código de verificación enviado.")
	return true
}

func (a *App) otpView(flow *auth.SessionFlow) bool {
	fmt.Fprintln(a.out, `
[Verificación]  "back" para volver.`)
	code := a.prompt("Código: ")
	if code == "back" {
		flow.Back()
		return true
	}
	if !flow.VerifyCode(code) {
		fmt.Fprintln(a.out, "Código incorrecto.")
	}
	return true
}

func (a *App) resetPasswordView(flow *auth.SessionFlow) bool {
	fmt.Fprintln(a.out, "\n[Nueva contraseña]")
	password, ok := a.promptRequired("Contraseña nueva: ")
	if !ok {
		return false
	}
	flow.ResetPassword(password)
	fmt.Fprintln(a.out, "Contraseña restablecida. Inicia sesión de nuevo.")
	return true
}

// promptRequired distingue EOF de una línea vacía.
func (a *App) promptRequired(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	return a.readLine()
}
