package scurve

// Error is a lightweight error type, mirroring the teacher driver packages'
// CustomError: allocation-free and usable from the kernel's no-heap call
// sites without pulling in fmt.Errorf's reflection machinery.
type Error string

func (e Error) Error() string { return string(e) }
