// Code generated by moq; DO NOT EDIT.
// github.com/matryer/moq

package rest

import (
	"context"
	"sync"
)

// Ensure, that dbPingerMock does implement dbPinger.
// If this is not the case, regenerate this file with moq.
var _ dbPinger = &dbPingerMock{}

// dbPingerMock is a mock implementation of dbPinger.
//
//	func TestSomethingThatUsesdbPinger(t *testing.T) {
//
//		// make and configure a mocked dbPinger
//		mockeddbPinger := &dbPingerMock{
//			PingFunc: func(ctx context.Context) error {
//				panic("mock out the Ping method")
//			},
//		}
//
//		// use mockeddbPinger in code that requires dbPinger
//		// and then make assertions.
//
//	}
type dbPingerMock struct {
	// PingFunc mocks the Ping method.
	PingFunc func(ctx context.Context) error

	// calls tracks calls to the methods.
	calls struct {
		// Ping holds details about calls to the Ping method.
		Ping []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
		}
	}
	lockPing sync.RWMutex
}

// Ping calls PingFunc.
func (mock *dbPingerMock) Ping(ctx context.Context) error {
	if mock.PingFunc == nil {
		panic("dbPingerMock.PingFunc: method is nil but dbPinger.Ping was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockPing.Lock()
	mock.calls.Ping = append(mock.calls.Ping, callInfo)
	mock.lockPing.Unlock()
	return mock.PingFunc(ctx)
}

// PingCalls gets all the calls that were made to Ping.
// Check the length with:
//
//	len(mockeddbPinger.PingCalls())
func (mock *dbPingerMock) PingCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockPing.RLock()
	calls = mock.calls.Ping
	mock.lockPing.RUnlock()
	return calls
}
