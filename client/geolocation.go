//go:build js

package main

import (
	"context"
	"fmt"
	"syscall/js"

	"voyagex-front/geo"
)

// browserLocator asks navigator.geolocation for a high-accuracy fix.
type browserLocator struct {
	timeoutMs int
}

func (b browserLocator) CurrentPosition(ctx context.Context) (geo.Position, error) {
	nav := js.Global().Get("navigator")
	gl := nav.Get("geolocation")
	if gl.IsUndefined() || gl.IsNull() {
		return geo.Position{}, geo.ErrUnavailable
	}

	type result struct {
		pos geo.Position
		err error
	}
	// The browser calls exactly one of the callbacks, possibly after ctx
	// is done, so they are released from inside.
	done := make(chan result, 1)
	var onSuccess, onError js.Func
	release := func() {
		onSuccess.Release()
		onError.Release()
	}
	onSuccess = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		coords := args[0].Get("coords")
		done <- result{pos: geo.Position{Lat: coords.Get("latitude").Float(), Lng: coords.Get("longitude").Float()}}
		release()
		return nil
	})
	onError = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		done <- result{err: fmt.Errorf("geolocation: %s", args[0].Get("message").String())}
		release()
		return nil
	})

	opts := js.Global().Get("Object").New()
	opts.Set("enableHighAccuracy", true)
	opts.Set("timeout", b.timeoutMs)
	gl.Call("getCurrentPosition", onSuccess, onError, opts)

	select {
	case r := <-done:
		return r.pos, r.err
	case <-ctx.Done():
		return geo.Position{}, ctx.Err()
	}
}
