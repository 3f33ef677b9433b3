package services

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driven"
)

// fakeSizeKernel returns density(x) for each diameter.
// failOnCall makes the n-th call (1-based) fail.
type fakeSizeKernel struct {
	density    func(x float64) float64
	failOnCall int
	calls      int
	err        error
	short      bool
}

var _ driven.SizeKernel = (*fakeSizeKernel)(nil)

func (k *fakeSizeKernel) LognormalDensity(_, _ float64, x []float64) ([]float64, error) {
	k.calls++
	if k.failOnCall == k.calls {
		return nil, k.err
	}
	n := len(x)
	if k.short {
		n--
	}
	y := make([]float64, n)
	for i := range y {
		y[i] = k.density(x[i])
	}
	return y, nil
}

// fakeStrainKernel echoes its inputs into the curve so tests can check
// what the service passed through.
type fakeStrainKernel struct {
	mu        sync.Mutex
	seen      []domain.Reflection
	fail      map[domain.Reflection]error
	delay     time.Duration
	active    atomic.Int32
	maxActive atomic.Int32
}

var _ driven.StrainKernel = (*fakeStrainKernel)(nil)

func (k *fakeStrainKernel) enter(r domain.Reflection) error {
	n := k.active.Add(1)
	for {
		m := k.maxActive.Load()
		if n <= m || k.maxActive.CompareAndSwap(m, n) {
			break
		}
	}
	k.mu.Lock()
	k.seen = append(k.seen, r)
	err := k.fail[r]
	k.mu.Unlock()
	if k.delay > 0 {
		time.Sleep(k.delay)
	}
	return err
}

func (k *fakeStrainKernel) InvariantDisplacement(l []float64, r domain.Reflection, aa, bb, inv float64) ([]float64, error) {
	defer k.active.Add(-1)
	if err := k.enter(r); err != nil {
		return nil, err
	}
	out := make([]float64, len(l))
	for i := range l {
		out[i] = aa + bb + inv*l[i]
	}
	return out, nil
}

func (k *fakeStrainKernel) DislocationDisplacement(l []float64, r domain.Reflection, v domain.KrivoglazWilkensValues) ([]float64, error) {
	defer k.active.Add(-1)
	if err := k.enter(r); err != nil {
		return nil, err
	}
	out := make([]float64, len(l))
	for i := range l {
		out[i] = v.Rho * l[i]
	}
	return out, nil
}
