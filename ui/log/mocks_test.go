package log

type mockConsole struct {
	LogFunc   func(text string)
	WarnFunc  func(text string)
	ErrorFunc func(text string)
}

func (m *mockConsole) Log(text string) {
	m.LogFunc(text)
}

func (m *mockConsole) Warn(text string) {
	m.WarnFunc(text)
}

func (m *mockConsole) Error(text string) {
	m.ErrorFunc(text)
}
