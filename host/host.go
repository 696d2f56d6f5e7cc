// Package host exposes buffer operations to WebAssembly guests as a wazero
// host module.
//
// Every function takes and returns i32 values and operates on the calling
// module's linear memory, which must be exported. Pointers and lengths are
// reinterpreted as unsigned. A negative result is a Status.
package host

import (
	"context"
	stderrors "errors"
	"strconv"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/bytebuf/buffer"
	"github.com/wippyai/bytebuf/errors"
	"github.com/wippyai/bytebuf/memory"
)

// ModuleName is the default import module name.
const ModuleName = "bytebuf"

// Status is the negative result code of a failed call.
type Status int32

const (
	StatusOK               Status = 0
	StatusRange            Status = -1
	StatusType             Status = -2
	StatusEncoding         Status = -3
	StatusLength           Status = -4
	StatusShortDestination Status = -5
	StatusInternal         Status = -6
)

// Options configures the host module.
type Options struct {
	// ModuleName is the name guests import from.
	ModuleName string
}

// DefaultOptions returns default host module configuration.
func DefaultOptions() Options {
	return Options{
		ModuleName: ModuleName,
	}
}

var errShortDestination = errors.New(errors.PhaseHost, errors.KindInvalidInput).
	Detail("destination too small").
	Build()

// statusOf maps an error to the status returned to the guest.
func statusOf(err error) Status {
	if stderrors.Is(err, errShortDestination) {
		return StatusShortDestination
	}
	switch errors.KindOf(err) {
	case errors.KindRangeViolation:
		return StatusRange
	case errors.KindTypeMismatch:
		return StatusType
	case errors.KindUnknownEncoding:
		return StatusEncoding
	case errors.KindLengthPrecondition:
		return StatusLength
	}
	return StatusInternal
}

type handler func(ctx context.Context, mem *memory.Storage, args []int32) (int32, error)

type function struct {
	name   string
	params int
	fn     handler
}

// Instantiate registers the host module in rt. It must run before any guest
// importing the module is instantiated.
func Instantiate(ctx context.Context, rt wazero.Runtime, opts Options) (api.Module, error) {
	name := opts.ModuleName
	if name == "" {
		name = ModuleName
	}

	builder := rt.NewHostModuleBuilder(name)
	for _, f := range functions {
		builder.NewFunctionBuilder().
			WithGoModuleFunction(wrap(f), i32s(f.params), i32s(1)).
			Export(f.name)
	}

	compiled, err := builder.Compile(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseHost, errors.KindRegistration, err, "compile host module "+name)
	}
	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(name))
	if err != nil {
		return nil, errors.Instantiation(err)
	}
	Logger().Debug("host module instantiated",
		zap.String("module", name),
		zap.Int("functions", len(functions)))
	return mod, nil
}

// Exports lists the exported function names with their parameter counts.
func Exports() map[string]int {
	out := make(map[string]int, len(functions))
	for _, f := range functions {
		out[f.name] = f.params
	}
	return out
}

func i32s(n int) []api.ValueType {
	types := make([]api.ValueType, n)
	for i := range types {
		types[i] = api.ValueTypeI32
	}
	return types
}

func wrap(f function) api.GoModuleFunc {
	return func(ctx context.Context, mod api.Module, stack []uint64) {
		args := make([]int32, f.params)
		for i := range args {
			args[i] = api.DecodeI32(stack[i])
		}

		var (
			res int32
			err error
		)
		if mem := memory.Wrap(mod.Memory()); mem == nil {
			err = errors.InvalidInput(errors.PhaseLoad, "caller has no memory")
		} else {
			res, err = f.fn(ctx, mem, args)
		}

		if err != nil {
			res = int32(statusOf(err))
			Logger().Warn("host call failed",
				zap.String("function", f.name),
				zap.String("caller", mod.Name()),
				zap.Int32("status", res),
				zap.Error(err))
		}
		stack[0] = api.EncodeI32(res)
	}
}

func encodingOf(v int32) (buffer.Encoding, error) {
	enc := buffer.Encoding(v)
	if v < 0 || !enc.Valid() {
		return 0, errors.UnknownEncoding(errors.PhaseHost, strconv.Itoa(int(v)))
	}
	return enc, nil
}

func view(mem *memory.Storage, ptr, length int32) (*buffer.Buffer, error) {
	return mem.Buffer(uint32(ptr), uint32(length))
}

func text(mem *memory.Storage, ptr, length int32) (string, error) {
	p, err := mem.Range(uint32(ptr), uint32(length))
	if err != nil {
		return "", err
	}
	return string(p), nil
}

func store(mem *memory.Storage, ptr int32, v int32) error {
	if !mem.Mem.WriteUint32Le(uint32(ptr), uint32(v)) {
		return errors.OutOfBounds(errors.PhaseHost, "out", int(uint32(ptr)), int(mem.Size()))
	}
	return nil
}
