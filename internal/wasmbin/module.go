package wasmbin

const (
	sectionType     = 0x01
	sectionImport   = 0x02
	sectionFunction = 0x03
	sectionMemory   = 0x05
	sectionExport   = 0x07
	sectionCode     = 0x0a

	kindFunc   = 0x00
	kindMemory = 0x02

	valI32   = 0x7f
	funcType = 0x60

	opLocalGet = 0x20
	opCall     = 0x10
	opEnd      = 0x0b
)

var header = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

// Func describes an i32-only function imported from a host module.
type Func struct {
	Name    string
	Params  int
	Results int
}

// MemoryModule returns a module exporting pages of linear memory as "memory".
func MemoryModule(pages uint32) []byte {
	return ProxyModule("", nil, pages)
}

// ProxyModule returns a module that imports fns from module and re-exports
// each one under the same name through a local wrapper, alongside pages of
// memory exported as "memory". Calls through the wrappers reach the host
// with this module as the caller.
func ProxyModule(module string, fns []Func, pages uint32) []byte {
	w := NewWriter()
	w.WriteBytes(header)

	if len(fns) > 0 {
		w.Section(sectionType, func(s *Writer) {
			s.WriteU32(uint32(len(fns)))
			for _, f := range fns {
				s.Byte(funcType)
				writeI32s(s, f.Params)
				writeI32s(s, f.Results)
			}
		})
		w.Section(sectionImport, func(s *Writer) {
			s.WriteU32(uint32(len(fns)))
			for i, f := range fns {
				s.WriteName(module)
				s.WriteName(f.Name)
				s.Byte(kindFunc)
				s.WriteU32(uint32(i))
			}
		})
		w.Section(sectionFunction, func(s *Writer) {
			s.WriteU32(uint32(len(fns)))
			for i := range fns {
				s.WriteU32(uint32(i))
			}
		})
	}

	w.Section(sectionMemory, func(s *Writer) {
		s.WriteU32(1)
		s.Byte(0x00) // no maximum
		s.WriteU32(pages)
	})

	w.Section(sectionExport, func(s *Writer) {
		s.WriteU32(uint32(len(fns) + 1))
		s.WriteName("memory")
		s.Byte(kindMemory)
		s.WriteU32(0)
		for i, f := range fns {
			s.WriteName(f.Name)
			s.Byte(kindFunc)
			s.WriteU32(uint32(len(fns) + i))
		}
	})

	if len(fns) > 0 {
		w.Section(sectionCode, func(s *Writer) {
			s.WriteU32(uint32(len(fns)))
			for i, f := range fns {
				body := NewWriter()
				body.WriteU32(0) // no locals
				for p := 0; p < f.Params; p++ {
					body.Byte(opLocalGet)
					body.WriteU32(uint32(p))
				}
				body.Byte(opCall)
				body.WriteU32(uint32(i))
				body.Byte(opEnd)

				s.WriteU32(uint32(body.Len()))
				s.WriteBytes(body.Bytes())
			}
		})
	}

	return w.Bytes()
}

func writeI32s(w *Writer, n int) {
	w.WriteU32(uint32(n))
	for i := 0; i < n; i++ {
		w.Byte(valI32)
	}
}
