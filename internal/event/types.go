// internal/event/types.go
package event

import (
	"projectile-machine/internal/input"
	"projectile-machine/internal/scene"
)

const (
	ButtonPressed EventType = "ButtonPressed" // Нажата кнопка, Data: ButtonPress
	ValueChanged  EventType = "ValueChanged"  // Параметр изменён, Data: ValueChange
	LimitReached  EventType = "LimitReached"  // Параметр упёрся в границу, Data: ValueChange
	InputRejected EventType = "InputRejected" // Ввод отклонён, Data: Rejection
	ScreenChanged EventType = "ScreenChanged" // Смена экрана, Data: ScreenChange
	RunStarted    EventType = "RunStarted"    // Запуск, Data: physics.LaunchParameters
	GroundImpact  EventType = "GroundImpact"  // Снаряд упал, Data: physics.Summary
	RunStopped    EventType = "RunStopped"    // Полёт прерван, Data: physics.Summary
)

// AllTypes перечисляет все события устройства.
var AllTypes = []EventType{
	ButtonPressed,
	ValueChanged,
	LimitReached,
	InputRejected,
	ScreenChanged,
	RunStarted,
	GroundImpact,
	RunStopped,
}

type ButtonPress struct {
	Button input.Button
}

type ValueChange struct {
	Name  string
	Value float64
}

type Rejection struct {
	Reason error
}

type ScreenChange struct {
	From scene.Screen
	To   scene.Screen
}
