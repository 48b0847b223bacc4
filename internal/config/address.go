package config

import (
	"net"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// NetAddress - адрес сервера в виде host:port.
// Реализует flag.Value и encoding.TextUnmarshaler, поэтому задается и флагом, и переменной окружения.
type NetAddress struct {
	// Host - Адрес сервера.
	Host string
	// Port - Порт сервера.
	Port int
}

// String метод возвращающий строку адреса типом host + port.
func (a NetAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set - метод установки значения в переменную типа NetAddress.
// На вход поступает строка с адресом, допускается префикс http://. Пустая строка означает адрес по умолчанию.
func (a *NetAddress) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		a.Host = DefaultHost
		a.Port = DefaultPort
		return nil
	}
	s = strings.TrimPrefix(s, "http://")

	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.Wrap(err, "need address in a form host:port")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return errors.Wrapf(err, "invalid port %q", portStr)
	}
	if port < 0 || port > 65535 {
		return errors.Errorf("port %d out of range", port)
	}
	a.Host = host
	a.Port = port
	return nil
}

// UnmarshalText - разбор адреса из переменной окружения.
func (a *NetAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}
