package cookie

import "time"

// Clock overrides for deterministic tests.

func (j *Jar) SetClock(now func() time.Time) { j.now = now }

func (m *MemorySource) SetClock(now func() time.Time) { m.now = now }
