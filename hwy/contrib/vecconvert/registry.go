package vecconvert

import "github.com/ajroetker/go-highway-convert/hwy"

// Policy names how a kernel treats values the destination cannot hold.
type Policy string

const (
	PolicyExact            Policy = "exact"
	PolicyExtend           Policy = "extend"
	PolicyRoundNearest     Policy = "round-nearest"
	PolicyRoundNearestEven Policy = "round-nearest-even"
	PolicyTruncate         Policy = "truncate"
	PolicyWrap             Policy = "wrap"
	PolicySaturate         Policy = "saturate"
)

// KernelInfo describes one registered kernel on the current target.
type KernelInfo struct {
	Name       string     `json:"name" yaml:"name"`
	Dst        string     `json:"dst" yaml:"dst"`
	DstRegs    int        `json:"dst_regs" yaml:"dst_regs"`
	Src        string     `json:"src" yaml:"src"`
	SrcRegs    int        `json:"src_regs" yaml:"src_regs"`
	Lanes      int        `json:"lanes" yaml:"lanes"`
	Policy     Policy     `json:"policy" yaml:"policy"`
	Resolution Resolution `json:"resolution" yaml:"resolution"`
	Via        string     `json:"via,omitempty" yaml:"via,omitempty"`
}

func describe[DT hwy.Lanes, DN Size, ST hwy.Lanes, SN Size](name string, policy Policy) KernelInfo {
	var dn DN
	var sn SN
	info := KernelInfo{
		Name:       name,
		Dst:        TypeName[DT](),
		DstRegs:    dn.Count(),
		Src:        TypeName[ST](),
		SrcRegs:    sn.Count(),
		Lanes:      LogicalCount[DT, DN, ST, SN](),
		Policy:     policy,
		Resolution: Lookup[DT, DN, ST, SN](),
	}
	if info.Resolution == Composed {
		info.Via = TypeName[int32]()
	}
	return info
}

// Kernels lists every registered kernel in a stable order.
func Kernels() []KernelInfo {
	return []KernelInfo{
		describe[float32, One, hwy.BFloat16, One]("BF16ToF32", PolicyExact),
		describe[hwy.BFloat16, One, float32, One]("F32ToBF16", PolicyRoundNearestEven),
		describe[float32, One, hwy.Float16, One]("F16ToF32", PolicyExact),
		describe[hwy.Float16, One, float32, One]("F32ToF16", PolicyRoundNearestEven),
		describe[float32, One, int64, Two]("I64ToF32", PolicyRoundNearest),
		describe[int64, Two, float32, One]("F32ToI64", PolicyTruncate),
		describe[int64, Two, int32, One]("I32ToI64", PolicyExtend),
		describe[int32, One, int64, Two]("I64ToI32", PolicyWrap),
		describe[int32, One, int8, One]("I8ToI32", PolicyExtend),
		describe[int32, One, uint8, One]("U8ToI32", PolicyExtend),
		describe[int8, One, int32, One]("I32ToI8", PolicyWrap),
		describe[uint8, One, int32, One]("I32ToU8", PolicyWrap),
		describe[int8, One, float32, One]("F32ToI8", PolicySaturate),
		describe[uint8, One, float32, One]("F32ToU8", PolicySaturate),
		describe[float32, One, int8, One]("I8ToF32", PolicyExact),
		describe[float32, One, uint8, One]("U8ToF32", PolicyExact),
		describe[int8, One, int64, Two]("I64ToI8", PolicyWrap),
		describe[uint8, One, int64, Two]("I64ToU8", PolicyWrap),
		describe[int64, Two, int8, One]("I8ToI64", PolicyExtend),
		describe[int64, Two, uint8, One]("U8ToI64", PolicyExtend),
	}
}

// TypeName returns the short lane type name used in diagnostics, such as
// "f32" or "bf16".
func TypeName[T hwy.Lanes]() string {
	var zero T
	switch any(zero).(type) {
	case hwy.BFloat16:
		return "bf16"
	case hwy.Float16:
		return "f16"
	case float32:
		return "f32"
	case float64:
		return "f64"
	case int8:
		return "i8"
	case int16:
		return "i16"
	case int32:
		return "i32"
	case int64:
		return "i64"
	case uint8:
		return "u8"
	case uint16:
		return "u16"
	case uint32:
		return "u32"
	case uint64:
		return "u64"
	default:
		return "unknown"
	}
}
