// Package chaos реализует управляемую инъекцию отказов: перед оформлением
// заказа делается одна равномерная выборка, и при попадании под заданную
// вероятность операция завершается искусственной ошибкой. Вероятность
// читается на каждый вызов, источник случайности подменяем в тестах.
package chaos

import "math/rand"

// Injector решает, должен ли очередной вызов завершиться искусственным
// отказом. RateFunc возвращает вероятность отказа, значения за пределами
// [0, 1] обрезаются по границе. DrawFunc возвращает равномерную выборку
// из [0, 1); при фиксированном источнике поведение детерминировано.
type Injector struct {
	rate func() float64
	draw func() float64
}

// New создаёт инжектор с заданной функцией вероятности и стандартным
// источником случайности.
func New(rate func() float64) *Injector {
	return NewWithSource(rate, rand.Float64)
}

// NewWithSource создаёт инжектор с подменённым источником случайности.
func NewWithSource(rate func() float64, draw func() float64) *Injector {
	return &Injector{rate: rate, draw: draw}
}

// ShouldFail возвращает true, если текущий вызов должен завершиться
// отказом. Вероятность 0 и меньше никогда не срабатывает, 1 и больше —
// срабатывает всегда, без обращения к источнику случайности.
func (i *Injector) ShouldFail() bool {
	rate := i.rate()
	if rate <= 0 {
		return false
	}
	if rate >= 1 {
		return true
	}
	return i.draw() < rate
}
