package views

import "sync"

// generations evita que CountByPets escriba en el cache un conteo leído antes
// de una invalidación concurrente. Solo guarda ids mientras hay lecturas en vuelo.
type generations struct {
	mu       sync.Mutex
	seq      uint64
	inFlight int
	bumped   map[string]uint64
}

// begin marca el inicio de una lectura y devuelve su secuencia.
func (g *generations) begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inFlight++
	return g.seq
}

func (g *generations) end() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inFlight--
	if g.inFlight == 0 {
		g.bumped = nil
	}
}

func (g *generations) bump(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	if g.inFlight == 0 {
		return
	}
	if g.bumped == nil {
		g.bumped = make(map[string]uint64)
	}
	g.bumped[id] = g.seq
}

// changedSince devuelve los ids de la lista invalidados después de start.
func (g *generations) changedSince(start uint64, ids []string) map[string]struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[string]struct{})
	for _, id := range ids {
		if g.bumped[id] > start {
			out[id] = struct{}{}
		}
	}
	return out
}
