package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/adoption-stats/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	IncomingByCountryFunc         func(ctx context.Context, sel domain.YearSelector) ([]domain.IncomingRow, error)
	IncomingByStateFunc           func(ctx context.Context, sel domain.YearSelector) ([]domain.IncomingRow, error)
	OutgoingByCountryAndStateFunc func(ctx context.Context, sel domain.YearSelector) ([]domain.OutgoingRow, error)
	YearsFunc                     func(ctx context.Context) ([]int, error)
	StatesFunc                    func(ctx context.Context) ([]string, error)
	CountriesFunc                 func(ctx context.Context) ([]string, error)

	calls struct {
		IncomingByCountry []struct {
			Ctx context.Context
			Sel domain.YearSelector
		}
		IncomingByState []struct {
			Ctx context.Context
			Sel domain.YearSelector
		}
		OutgoingByCountryAndState []struct {
			Ctx context.Context
			Sel domain.YearSelector
		}
		Years []struct {
			Ctx context.Context
		}
		States []struct {
			Ctx context.Context
		}
		Countries []struct {
			Ctx context.Context
		}
	}
	lockIncomingByCountry         sync.RWMutex
	lockIncomingByState           sync.RWMutex
	lockOutgoingByCountryAndState sync.RWMutex
	lockYears                     sync.RWMutex
	lockStates                    sync.RWMutex
	lockCountries                 sync.RWMutex
}

func (mock *reportRepoMock) IncomingByCountry(ctx context.Context, sel domain.YearSelector) ([]domain.IncomingRow, error) {
	if mock.IncomingByCountryFunc == nil {
		panic("reportRepoMock.IncomingByCountryFunc: method is nil but reportRepo.IncomingByCountry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sel domain.YearSelector
	}{Ctx: ctx, Sel: sel}
	mock.lockIncomingByCountry.Lock()
	mock.calls.IncomingByCountry = append(mock.calls.IncomingByCountry, callInfo)
	mock.lockIncomingByCountry.Unlock()
	return mock.IncomingByCountryFunc(ctx, sel)
}

func (mock *reportRepoMock) IncomingByCountryCalls() []struct {
	Ctx context.Context
	Sel domain.YearSelector
} {
	mock.lockIncomingByCountry.RLock()
	calls := mock.calls.IncomingByCountry
	mock.lockIncomingByCountry.RUnlock()
	return calls
}

func (mock *reportRepoMock) IncomingByState(ctx context.Context, sel domain.YearSelector) ([]domain.IncomingRow, error) {
	if mock.IncomingByStateFunc == nil {
		panic("reportRepoMock.IncomingByStateFunc: method is nil but reportRepo.IncomingByState was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sel domain.YearSelector
	}{Ctx: ctx, Sel: sel}
	mock.lockIncomingByState.Lock()
	mock.calls.IncomingByState = append(mock.calls.IncomingByState, callInfo)
	mock.lockIncomingByState.Unlock()
	return mock.IncomingByStateFunc(ctx, sel)
}

func (mock *reportRepoMock) IncomingByStateCalls() []struct {
	Ctx context.Context
	Sel domain.YearSelector
} {
	mock.lockIncomingByState.RLock()
	calls := mock.calls.IncomingByState
	mock.lockIncomingByState.RUnlock()
	return calls
}

func (mock *reportRepoMock) OutgoingByCountryAndState(ctx context.Context, sel domain.YearSelector) ([]domain.OutgoingRow, error) {
	if mock.OutgoingByCountryAndStateFunc == nil {
		panic("reportRepoMock.OutgoingByCountryAndStateFunc: method is nil but reportRepo.OutgoingByCountryAndState was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sel domain.YearSelector
	}{Ctx: ctx, Sel: sel}
	mock.lockOutgoingByCountryAndState.Lock()
	mock.calls.OutgoingByCountryAndState = append(mock.calls.OutgoingByCountryAndState, callInfo)
	mock.lockOutgoingByCountryAndState.Unlock()
	return mock.OutgoingByCountryAndStateFunc(ctx, sel)
}

func (mock *reportRepoMock) OutgoingByCountryAndStateCalls() []struct {
	Ctx context.Context
	Sel domain.YearSelector
} {
	mock.lockOutgoingByCountryAndState.RLock()
	calls := mock.calls.OutgoingByCountryAndState
	mock.lockOutgoingByCountryAndState.RUnlock()
	return calls
}

func (mock *reportRepoMock) Years(ctx context.Context) ([]int, error) {
	if mock.YearsFunc == nil {
		panic("reportRepoMock.YearsFunc: method is nil but reportRepo.Years was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockYears.Lock()
	mock.calls.Years = append(mock.calls.Years, callInfo)
	mock.lockYears.Unlock()
	return mock.YearsFunc(ctx)
}

func (mock *reportRepoMock) YearsCalls() []struct {
	Ctx context.Context
} {
	mock.lockYears.RLock()
	calls := mock.calls.Years
	mock.lockYears.RUnlock()
	return calls
}

func (mock *reportRepoMock) States(ctx context.Context) ([]string, error) {
	if mock.StatesFunc == nil {
		panic("reportRepoMock.StatesFunc: method is nil but reportRepo.States was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStates.Lock()
	mock.calls.States = append(mock.calls.States, callInfo)
	mock.lockStates.Unlock()
	return mock.StatesFunc(ctx)
}

func (mock *reportRepoMock) StatesCalls() []struct {
	Ctx context.Context
} {
	mock.lockStates.RLock()
	calls := mock.calls.States
	mock.lockStates.RUnlock()
	return calls
}

func (mock *reportRepoMock) Countries(ctx context.Context) ([]string, error) {
	if mock.CountriesFunc == nil {
		panic("reportRepoMock.CountriesFunc: method is nil but reportRepo.Countries was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountries.Lock()
	mock.calls.Countries = append(mock.calls.Countries, callInfo)
	mock.lockCountries.Unlock()
	return mock.CountriesFunc(ctx)
}

func (mock *reportRepoMock) CountriesCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountries.RLock()
	calls := mock.calls.Countries
	mock.lockCountries.RUnlock()
	return calls
}
