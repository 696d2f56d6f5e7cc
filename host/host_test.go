package host

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/bytebuf/errors"
	"github.com/wippyai/bytebuf/internal/wasmbin"
)

// fakeModule stands in for the calling guest; only Memory and Name are used.
type fakeModule struct {
	api.Module
	mem api.Memory
}

func (f *fakeModule) Memory() api.Memory { return f.mem }
func (f *fakeModule) Name() string       { return "guest" }

func newMemory(t *testing.T) api.Memory {
	t.Helper()
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	t.Cleanup(func() { rt.Close(ctx) })

	mod, err := rt.Instantiate(ctx, wasmbin.MemoryModule(1))
	if err != nil {
		t.Fatalf("failed to instantiate: %v", err)
	}
	return mod.ExportedMemory("memory")
}

func lookup(t *testing.T, name string) function {
	t.Helper()
	for _, f := range functions {
		if f.name == name {
			return f
		}
	}
	t.Fatalf("no host function %q", name)
	return function{}
}

func call(t *testing.T, mem api.Memory, name string, args ...int32) int32 {
	t.Helper()
	f := lookup(t, name)
	if len(args) != f.params {
		t.Fatalf("%s takes %d params, got %d", name, f.params, len(args))
	}
	stack := make([]uint64, max(len(args), 1))
	for i, a := range args {
		stack[i] = api.EncodeI32(a)
	}
	wrap(f)(context.Background(), &fakeModule{mem: mem}, stack)
	return api.DecodeI32(stack[0])
}

func put(t *testing.T, mem api.Memory, offset uint32, data string) {
	t.Helper()
	if !mem.Write(offset, []byte(data)) {
		t.Fatalf("write at %d failed", offset)
	}
}

func get(t *testing.T, mem api.Memory, offset, length uint32) string {
	t.Helper()
	data, ok := mem.Read(offset, length)
	if !ok {
		t.Fatalf("read at %d failed", offset)
	}
	return string(data)
}

func readI32(t *testing.T, mem api.Memory, offset uint32) int32 {
	t.Helper()
	v, ok := mem.ReadUint32Le(offset)
	if !ok {
		t.Fatalf("read at %d failed", offset)
	}
	return int32(v)
}

const (
	encUTF8    = 0
	encUTF16LE = 3
	encHex     = 4
	encBase64  = 5
)

func TestEncode(t *testing.T) {
	mem := newMemory(t)
	put(t, mem, 0, "\xde\xad")

	if got := call(t, mem, "encode", encHex, 0, 2, 100, 16); got != 4 {
		t.Fatalf("encode(hex) = %d, want 4", got)
	}
	if got := get(t, mem, 100, 4); got != "dead" {
		t.Errorf("encoded = %q, want dead", got)
	}

	if got := call(t, mem, "encode", encHex, 0, 2, 100, 3); got != int32(StatusShortDestination) {
		t.Errorf("encode(short) = %d, want %d", got, StatusShortDestination)
	}
	if got := call(t, mem, "encode", 99, 0, 2, 100, 16); got != int32(StatusEncoding) {
		t.Errorf("encode(99) = %d, want %d", got, StatusEncoding)
	}
	if got := call(t, mem, "encode", encHex, 65535, 10, 100, 16); got != int32(StatusRange) {
		t.Errorf("encode(out of bounds) = %d, want %d", got, StatusRange)
	}
}

func TestDecode(t *testing.T) {
	mem := newMemory(t)
	put(t, mem, 0, "YWJj")

	if got := call(t, mem, "decode", encBase64, 0, 4, 100, 8); got != 3 {
		t.Fatalf("decode(base64) = %d, want 3", got)
	}
	if got := get(t, mem, 100, 3); got != "abc" {
		t.Errorf("decoded = %q, want abc", got)
	}

	put(t, mem, 10, "ab")
	if got := call(t, mem, "decode", encUTF16LE, 10, 2, 200, 3); got != 2 {
		t.Errorf("decode(utf16le, cap 3) = %d, want 2", got)
	}
}

func TestByteLength(t *testing.T) {
	mem := newMemory(t)
	put(t, mem, 0, "€")
	put(t, mem, 10, "ab")

	if got := call(t, mem, "byte_length", encUTF8, 0, 3); got != 3 {
		t.Errorf("byte_length(utf8) = %d, want 3", got)
	}
	if got := call(t, mem, "byte_length", encUTF16LE, 10, 2); got != 4 {
		t.Errorf("byte_length(utf16le) = %d, want 4", got)
	}
}

func TestCompare(t *testing.T) {
	mem := newMemory(t)
	put(t, mem, 0, "abc")
	put(t, mem, 10, "abcd")

	if got := call(t, mem, "compare", 0, 3, 10, 4, 50); got != 0 {
		t.Fatalf("compare status = %d", got)
	}
	if got := readI32(t, mem, 50); got != -1 {
		t.Errorf("compare(abc, abcd) = %d, want -1", got)
	}

	call(t, mem, "compare", 10, 4, 0, 3, 50)
	if got := readI32(t, mem, 50); got != 1 {
		t.Errorf("compare(abcd, abc) = %d, want 1", got)
	}

	if got := call(t, mem, "compare", 0, 3, 10, 4, 65534); got != int32(StatusRange) {
		t.Errorf("compare(bad out) = %d, want %d", got, StatusRange)
	}
}

func TestIndexOf(t *testing.T) {
	mem := newMemory(t)
	put(t, mem, 0, "abcdefgh")
	put(t, mem, 20, "cde")

	if got := call(t, mem, "index_of", 0, 8, 20, 3, -1, 1, 50); got != 0 {
		t.Fatalf("index_of status = %d", got)
	}
	if got := readI32(t, mem, 50); got != 2 {
		t.Errorf("index_of = %d, want 2", got)
	}

	call(t, mem, "index_of", 0, 4, 20, 3, -1, 1, 50)
	if got := readI32(t, mem, 50); got != -1 {
		t.Errorf("index_of(abcd) = %d, want -1", got)
	}

	if got := call(t, mem, "index_of", 0, 8, 20, 3, 8, 1, 50); got != int32(StatusRange) {
		t.Errorf("index_of(offset 8) = %d, want %d", got, StatusRange)
	}
}

func TestFill(t *testing.T) {
	mem := newMemory(t)
	put(t, mem, 30, "\x01\x02\x03")

	if got := call(t, mem, "fill", 0, 5, 30, 3, 0, 0); got != 0 {
		t.Fatalf("fill status = %d", got)
	}
	if got := get(t, mem, 0, 5); got != "\x01\x02\x03\x01\x02" {
		t.Errorf("filled = %x, want 0102030102", got)
	}

	if got := call(t, mem, "fill", 0, 5, 30, 0, 0, 0); got != int32(StatusLength) {
		t.Errorf("fill(empty pattern) = %d, want %d", got, StatusLength)
	}
	if got := call(t, mem, "fill", 0, 5, 30, 3, -1, 0); got != int32(StatusRange) {
		t.Errorf("fill(offset -1) = %d, want %d", got, StatusRange)
	}
}

func TestCopy(t *testing.T) {
	mem := newMemory(t)
	put(t, mem, 0, "abcdef")

	if got := call(t, mem, "copy", 0, 4, 2, 4); got != 4 {
		t.Fatalf("copy = %d, want 4", got)
	}
	if got := get(t, mem, 0, 6); got != "ababcd" {
		t.Errorf("after copy = %q, want ababcd", got)
	}
}

func TestSwap(t *testing.T) {
	mem := newMemory(t)
	put(t, mem, 0, "\x00\x01\x02\x03")

	if got := call(t, mem, "swap32", 0, 4); got != 0 {
		t.Fatalf("swap32 status = %d", got)
	}
	if got := get(t, mem, 0, 4); got != "\x03\x02\x01\x00" {
		t.Errorf("swapped = %x, want 03020100", got)
	}
	if got := call(t, mem, "swap16", 0, 3); got != int32(StatusLength) {
		t.Errorf("swap16(3 bytes) = %d, want %d", got, StatusLength)
	}
}

func TestDetect(t *testing.T) {
	mem := newMemory(t)
	put(t, mem, 0, "\xf0\x9f")
	put(t, mem, 10, "abc")

	if got := call(t, mem, "is_utf8", 0, 2); got != 0 {
		t.Errorf("is_utf8(truncated) = %d, want 0", got)
	}
	if got := call(t, mem, "is_utf8", 10, 3); got != 1 {
		t.Errorf("is_utf8(abc) = %d, want 1", got)
	}
	if got := call(t, mem, "is_ascii", 10, 3); got != 1 {
		t.Errorf("is_ascii(abc) = %d, want 1", got)
	}
}

func TestNoMemory(t *testing.T) {
	if got := call(t, nil, "swap16", 0, 2); got != int32(StatusInternal) {
		t.Errorf("swap16 without memory = %d, want %d", got, StatusInternal)
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want Status
	}{
		{errors.RangeViolation(errors.PhaseFill, "offset", -1, 0, 4), StatusRange},
		{errors.TypeMismatch(errors.PhaseValidate, "value", "string", 1), StatusType},
		{errors.UnknownEncoding(errors.PhaseHost, "9"), StatusEncoding},
		{errors.LengthPrecondition(errors.PhaseSwap, "odd"), StatusLength},
		{errShortDestination, StatusShortDestination},
		{errors.InvalidInput(errors.PhaseLoad, "x"), StatusInternal},
	}
	for _, tt := range tests {
		if got := statusOf(tt.err); got != tt.want {
			t.Errorf("statusOf(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestExports(t *testing.T) {
	exports := Exports()
	for _, name := range []string{"byte_length", "encode", "decode", "compare", "index_of",
		"fill", "copy", "swap16", "swap32", "swap64", "is_utf8", "is_ascii"} {
		if _, ok := exports[name]; !ok {
			t.Errorf("missing export %q", name)
		}
	}
}

func TestInstantiate_Guest(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	opts := DefaultOptions()
	opts.ModuleName = "buf"
	if _, err := Instantiate(ctx, rt, opts); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}

	fns := make([]wasmbin.Func, 0, len(functions))
	for _, f := range functions {
		fns = append(fns, wasmbin.Func{Name: f.name, Params: f.params, Results: 1})
	}
	guest, err := rt.Instantiate(ctx, wasmbin.ProxyModule("buf", fns, 1))
	if err != nil {
		t.Fatalf("instantiate guest: %v", err)
	}
	mem := guest.ExportedMemory("memory")
	put(t, mem, 0, "\x00\x01\x02\x03")

	res, err := guest.ExportedFunction("swap32").Call(ctx, api.EncodeI32(0), api.EncodeI32(4))
	if err != nil {
		t.Fatalf("swap32: %v", err)
	}
	if api.DecodeI32(res[0]) != 0 {
		t.Errorf("swap32 status = %d", api.DecodeI32(res[0]))
	}
	if got := get(t, mem, 0, 4); got != "\x03\x02\x01\x00" {
		t.Errorf("guest memory = %x, want 03020100", got)
	}

	res, err = guest.ExportedFunction("encode").Call(ctx,
		api.EncodeI32(encHex), api.EncodeI32(0), api.EncodeI32(2), api.EncodeI32(64), api.EncodeI32(8))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if n := api.DecodeI32(res[0]); n != 4 || get(t, mem, 64, 4) != "0302" {
		t.Errorf("encode = %d %q, want 4 0302", n, get(t, mem, 64, 4))
	}
}

func TestInstantiate_Duplicate(t *testing.T) {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	if _, err := Instantiate(ctx, rt, Options{}); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	_, err := Instantiate(ctx, rt, Options{})
	if errors.KindOf(err) != errors.KindInstantiation {
		t.Errorf("second Instantiate kind = %q, want instantiation", errors.KindOf(err))
	}
}
