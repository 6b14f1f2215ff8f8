// internal/state/state.go
package state

import (
	"time"

	"projectile-machine/internal/scene"
)

// State — интерфейс для всех состояний устройства
type State interface {
	Enter()
	Update(now time.Duration)
	Screen() scene.Screen
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(now time.Duration) {
	if sm.current != nil {
		sm.current.Update(now)
	}
}

// Current возвращает текущее состояние (может быть nil)
func (sm *StateMachine) Current() State {
	return sm.current
}

// NoScreen is reported while no state is set; it renders as a blank frame.
const NoScreen scene.Screen = -1

// Screen возвращает экран текущего состояния
func (sm *StateMachine) Screen() scene.Screen {
	if sm.current == nil {
		return NoScreen
	}
	return sm.current.Screen()
}
