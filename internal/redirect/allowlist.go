// Пакет redirect содержит проверку адресов перенаправления по списку разрешенных значений.
package redirect

import (
	"slices"

	"github.com/pkg/errors"
)

// ErrEmptyAllowList - ошибка создания пустого списка разрешенных адресов.
var ErrEmptyAllowList = errors.New("allow list must contain at least one target")

// Default - список разрешенных адресов сервиса.
// Первый элемент списка используется как адрес по умолчанию.
var Default = MustAllowList("/home", "/profile", "/settings")

// AllowList - неизменяемый упорядоченный список разрешенных адресов перенаправления.
type AllowList struct {
	targets []string
}

// NewAllowList - функция создания списка разрешенных адресов.
// Адресом по умолчанию становится первый переданный адрес, поэтому пустой список недопустим.
func NewAllowList(targets ...string) (*AllowList, error) {
	if len(targets) == 0 {
		return nil, ErrEmptyAllowList
	}
	return &AllowList{targets: slices.Clone(targets)}, nil
}

// MustAllowList - аналог NewAllowList, паникующий при ошибке.
func MustAllowList(targets ...string) *AllowList {
	list, err := NewAllowList(targets...)
	if err != nil {
		panic(err)
	}
	return list
}

// Allowed - проверка вхождения адреса в список.
// Сравнение строгое: регистр учитывается, завершающие слэши и префиксы не нормализуются.
func (a *AllowList) Allowed(target string) bool {
	return slices.Contains(a.targets, target)
}

// Resolve возвращает адрес, на который допустимо перенаправить пользователя.
// Если адрес не входит в список, запрос не отклоняется, а перенаправляется на адрес по умолчанию.
func (a *AllowList) Resolve(target string) string {
	if a.Allowed(target) {
		return target
	}
	return a.Fallback()
}

// Fallback - адрес по умолчанию.
func (a *AllowList) Fallback() string {
	return a.targets[0]
}

// Targets - копия списка разрешенных адресов в исходном порядке.
func (a *AllowList) Targets() []string {
	return slices.Clone(a.targets)
}
