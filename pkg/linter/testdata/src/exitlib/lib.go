// Пакет не main: os.Exit в функции main допустим.
package exitlib

import "os"

func main() {
	os.Exit(1)
}
