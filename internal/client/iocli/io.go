// Package iocli абстрагирует терминальный ввод-вывод, чтобы команды
// можно было тестировать без реального stdin/stdout.
package iocli

//go:generate go tool moq -out io_mock.go . IO

// IO - терминальный ввод-вывод команд
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Confirm(prompt string) (bool, error)
	Write(p []byte) (n int, err error)
}
