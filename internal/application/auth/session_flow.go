// Package auth implementa el flujo de acceso simulado del tablero: una
// máquina de estados de interfaz con un código de aceptación fijo. No hay
// almacén de credenciales ni seguridad real; todo es cosmético.
package auth

import "time"

// Vistas del flujo de acceso.
const (
	ViewLogin          = "LOGIN"
	ViewSignup         = "SIGNUP"
	ViewForgotPassword = "FORGOT_PASSWORD"
	ViewOTP            = "OTP"
	ViewResetPassword  = "RESET_PASSWORD"
)

// Contexto desde el que se pidió el código: entrar o restablecer contraseña.
const (
	OTPContextLogin = "LOGIN"
	OTPContextReset = "RESET"
)

// Config opciones del flujo simulado.
type Config struct {
	Code  string        // código de aceptación; "1234" por defecto
	Delay time.Duration // retardo artificial antes de cada transición; 0 en tests
}

// SessionFlow máquina de estados del acceso simulado. Ningún dato ingresado
// se verifica contra nada: las credenciales se ignoran y solo el código de
// aceptación decide. Durante el retardo no hay acceso concurrente al estado.
type SessionFlow struct {
	cfg           Config
	view          string
	otpContext    string
	authenticated bool
}

// NewSessionFlow construye el flujo en la vista de login.
func NewSessionFlow(cfg Config) *SessionFlow {
	if cfg.Code == "" {
		cfg.Code = "1234"
	}
	return &SessionFlow{cfg: cfg, view: ViewLogin, otpContext: OTPContextLogin}
}

// View devuelve la vista actual del flujo.
func (f *SessionFlow) View() string { return f.view }

// Authenticated indica si la sesión quedó abierta.
func (f *SessionFlow) Authenticated() bool { return f.authenticated }

// simulate imita la latencia de una API remota.
func (f *SessionFlow) simulate() {
	if f.cfg.Delay > 0 {
		time.Sleep(f.cfg.Delay)
	}
}

// GoToSignup / GoToForgotPassword / GoToLogin navegan entre formularios.
func (f *SessionFlow) GoToSignup() { f.view = ViewSignup }

func (f *SessionFlow) GoToForgotPassword() { f.view = ViewForgotPassword }

func (f *SessionFlow) GoToLogin() { f.view = ViewLogin }

// Login envía credenciales (ignoradas) y pasa a la verificación por código.
func (f *SessionFlow) Login(email, password string) {
	_ = email
	_ = password
	f.simulate()
	f.otpContext = OTPContextLogin
	f.view = ViewOTP
}

// Signup registra (ningún dato se guarda) y abre sesión directamente.
func (f *SessionFlow) Signup(name, email, password string) {
	_, _, _ = name, email, password
	f.simulate()
	f.authenticated = true
}

// SendRecoveryCode inicia la recuperación: pasa a la verificación por código
// con contexto de restablecimiento.
func (f *SessionFlow) SendRecoveryCode(email string) {
	_ = email
	f.simulate()
	f.otpContext = OTPContextReset
	f.view = ViewOTP
}

// VerifyCode comprueba el código de aceptación. Con el código correcto abre
// sesión (contexto LOGIN) o pasa a restablecer contraseña (contexto RESET);
// con uno incorrecto devuelve false y permanece en la vista OTP.
func (f *SessionFlow) VerifyCode(code string) bool {
	f.simulate()
	if code != f.cfg.Code {
		return false
	}
	if f.otpContext == OTPContextLogin {
		f.authenticated = true
	} else {
		f.view = ViewResetPassword
	}
	return true
}

// ResetPassword finge restablecer la contraseña y vuelve al login.
func (f *SessionFlow) ResetPassword(newPassword string) {
	_ = newPassword
	f.simulate()
	f.view = ViewLogin
}

// Back desde la vista OTP vuelve al formulario que la originó.
func (f *SessionFlow) Back() {
	if f.view != ViewOTP {
		return
	}
	if f.otpContext == OTPContextLogin {
		f.view = ViewLogin
	} else {
		f.view = ViewForgotPassword
	}
}

// Logout cierra la sesión y vuelve al login.
func (f *SessionFlow) Logout() {
	f.authenticated = false
	f.view = ViewLogin
}
