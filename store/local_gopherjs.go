//go:build js && !wasm

package store

import (
	"errors"
	"fmt"

	"github.com/gopherjs/gopherjs/js"
)

// LocalStorage is window.localStorage.
type LocalStorage struct {
	ls *js.Object
}

// NewLocalStorage fails when the page has no usable localStorage, as in
// some private browsing modes.
func NewLocalStorage() (*LocalStorage, error) {
	ls := js.Global.Get("localStorage")
	if ls == js.Undefined || ls == nil {
		return nil, errors.New("store: localStorage unavailable")
	}
	return &LocalStorage{ls: ls}, nil
}

func (l *LocalStorage) GetItem(key string) (string, bool) {
	v := l.ls.Call("getItem", key)
	if v == nil || v == js.Undefined {
		return "", false
	}
	return v.String(), true
}

// SetItem reports quota errors instead of letting them escape as panics.
func (l *LocalStorage) SetItem(key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("store: set %s: %v", key, r)
		}
	}()
	l.ls.Call("setItem", key, value)
	return nil
}

func (l *LocalStorage) RemoveItem(key string) {
	l.ls.Call("removeItem", key)
}
