//go:build js && wasm

package storage

import (
	"errors"
	"syscall/js"
)

// LocalStorage is a KeyValue backed by the browser's window.localStorage.
type LocalStorage struct {
	ls js.Value
}

// OpenLocalStorage returns the page's localStorage, or an error when the
// browser does not expose one (e.g. storage disabled by privacy settings).
func OpenLocalStorage() (*LocalStorage, error) {
	ls := js.Global().Get("localStorage")
	if ls.IsUndefined() || ls.IsNull() {
		return nil, errors.New("storage: localStorage is not available")
	}
	return &LocalStorage{ls: ls}, nil
}

// Get implements KeyValue.
func (l *LocalStorage) Get(key string) (v string, ok bool, err error) {
	defer recoverJS(&err)

	item := l.ls.Call("getItem", key)
	if item.IsNull() || item.IsUndefined() {
		return "", false, nil
	}
	return item.String(), true, nil
}

// Set implements KeyValue.
func (l *LocalStorage) Set(key, value string) (err error) {
	defer recoverJS(&err)

	l.ls.Call("setItem", key, value)
	return nil
}

// Delete implements KeyValue.
func (l *LocalStorage) Delete(key string) (err error) {
	defer recoverJS(&err)

	l.ls.Call("removeItem", key)
	return nil
}

// recoverJS turns a thrown JavaScript exception (quota exceeded,
// security errors) into an error.
func recoverJS(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(js.Error); ok {
		*err = errors.New("storage: localStorage: " + jsErr.Error())
		return
	}
	panic(r)
}
