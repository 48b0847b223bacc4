// Пакет для теста линтера с вызовом os.Exit из main.
package main

import "os"

// Функция main в которой os.Exit вызывается напрямую и через функцию.
func main() {
	println("Hello world")
	if len(os.Args) > 3 {
		os.Exit(2) // want "os.Exit called directly in main function"
	}
	exit(1)
}

// Функция в которой вызывается os.Exit .
func exit(code int) {
	os.Exit(code)
}

// Тестовая структура.
type Exiter struct{}

// main - метод структуры, а не функция main.
func (e Exiter) main() {
	os.Exit(1)
}
