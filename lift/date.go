package lift

import "time"

// DateOps wraps a time.Time. Formatting is left to the time package.
type DateOps struct {
	t time.Time
}

// Kind returns [KindDate].
func (d *DateOps) Kind() Kind { return KindDate }

// Value returns the wrapped time.Time.
func (d *DateOps) Value() any { return d.t }

// Time returns the wrapped time.Time, typed.
func (d *DateOps) Time() time.Time { return d.t }

// Transform applies fn to the raw time and lifts the result.
func (d *DateOps) Transform(fn func(any) any) Wrapper { return Lift(fn(d.t)) }

// Call invokes a registered date operation.
func (d *DateOps) Call(name string, args ...any) (Wrapper, error) {
	return Call(d, name, args...)
}

// String formats the time as RFC 3339 with nanoseconds.
func (d *DateOps) String() string { return d.t.Format(time.RFC3339Nano) }

// Year returns the year in the time's location.
func (d *DateOps) Year() int { return d.t.Year() }

// Unix returns the time as seconds since the Unix epoch.
func (d *DateOps) Unix() int64 { return d.t.Unix() }

// Before reports whether the time is before u.
func (d *DateOps) Before(u time.Time) bool { return d.t.Before(u) }

// After reports whether the time is after u.
func (d *DateOps) After(u time.Time) bool { return d.t.After(u) }

// Add returns the time shifted by dur.
func (d *DateOps) Add(dur time.Duration) *DateOps { return &DateOps{t: d.t.Add(dur)} }

// UTC returns the same instant in UTC.
func (d *DateOps) UTC() *DateOps { return &DateOps{t: d.t.UTC()} }

// AddDate adds years, months and days as time.Time.AddDate does.
func (d *DateOps) AddDate(years, months, days int) *DateOps {
	return &DateOps{t: d.t.AddDate(years, months, days)}
}
