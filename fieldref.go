/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package fieldref

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/fieldref/apis"
	"dirpx.dev/fieldref/builder"
	"dirpx.dev/fieldref/config"
)

// init initializes the global state.
func init() {
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil)
	s.res = b.BuildResolver(s.cfg, s.reg, nil)
	s.bld = b
	st.Store(s)
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged, except that a
// nil reg or res is rebuilt by the builder and unpinned. Mainly used by tests
// to get a clean deterministic state.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	nreg, npreg := reg, true
	if nreg == nil {
		nreg, npreg = nbld.BuildRegistry(ncfg, old.reg), false
	}
	nres, npres := res, true
	if nres == nil {
		nres, npres = nbld.BuildResolver(ncfg, nreg, old.res), false
	}

	publish(ncfg, nreg, nres, nbld, npreg, npres)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg and rebuilds the
// registry and resolver unless they are pinned.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	b := old.bld

	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(cfg, nreg, old.res)
	}

	publish(cfg, nreg, nres, b, old.preg, old.pres)
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry replaces and pins the global registry. The resolver is
// rebuilt over it unless pinned.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	nres := old.res
	if !old.pres {
		nres = old.bld.BuildResolver(old.cfg, reg, old.res)
	}

	publish(old.cfg, reg, nres, old.bld, true, old.pres)
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver replaces and pins the global resolver.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(old.cfg, old.reg, res, old.bld, old.preg, true)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b and rebuilds the unpinned layers with it.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, nreg, old.res)
	}

	publish(old.cfg, nreg, nres, b, old.preg, old.pres)
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// UnpinRegistry lets the next reconfiguration rebuild the registry.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(old.cfg, old.reg, old.res, old.bld, false, old.pres)
}

// IsResolverPinned returns whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// UnpinResolver lets the next reconfiguration rebuild the resolver.
func UnpinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(old.cfg, old.reg, old.res, old.bld, old.preg, false)
}

// publish stores a new snapshot. Callers must hold buildMu.
// It panics if reg or res is nil.
func publish(cfg apis.Config, reg apis.Registry, res apis.Resolver, bld apis.Builder, preg, pres bool) {
	if reg == nil {
		panic(ErrNilRegistry)
	}
	if res == nil {
		panic(ErrNilResolver)
	}
	st.Store(&state{
		cfg:  cfg,
		reg:  reg,
		res:  res,
		bld:  bld,
		preg: preg,
		pres: pres,
	})
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is an immutable snapshot published atomically via st.Store; never
// mutate fields of a published state.
type state struct {
	cfg apis.Config
	reg apis.Registry
	res apis.Resolver
	bld apis.Builder
	// preg indicates whether the registry is pinned.
	preg bool
	// pres indicates whether the resolver is pinned.
	pres bool
}
