// Package memory implementa los puertos de los registros sobre un único
// estado en memoria con reemplazo completo (copy-on-write). Es el equivalente
// de un adaptador de persistencia para una sesión que no persiste nada.
package memory

import (
	"sync"

	"github.com/stockmaster/stockmaster/internal/domain/entity"
)

// StateSource abstrae al dueño del estado sobre el que opera un repositorio:
// el Store (cada mutación se publica de inmediato) o una transacción de la
// unidad de trabajo (las mutaciones se publican juntas al final).
type StateSource interface {
	Snapshot() entity.State
	update(fn func(st *entity.State) error) error
}

// Store es el dueño único del estado de la sesión. Todos los mutadores
// clonan el estado, lo modifican y publican la copia bajo el mutex, de modo
// que un lector con Snapshot nunca observa un registro a medio actualizar.
// El mutex garantiza el supuesto de un solo escritor a la vez.
type Store struct {
	mu    sync.Mutex
	state entity.State
}

// NewStore construye el Store con el estado inicial dado.
func NewStore(initial entity.State) *Store {
	return &Store{state: initial.Clone()}
}

// Snapshot devuelve una copia profunda del estado actual.
func (s *Store) Snapshot() entity.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// update aplica fn sobre una copia del estado y la publica si fn no falla.
func (s *Store) update(fn func(st *entity.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	s.state = next
	return nil
}
