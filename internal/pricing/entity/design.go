package entity

// PrintMethod 印刷方式
const (
	MethodSilkscreen = "silkscreen"
	MethodDTF        = "dtf"
)

// PlateType 版类型
const (
	PlateNormal        = "normal"
	PlateDecomposition = "decomposition" // 分解版：按色数加收版费
)

// InkUsage 特殊油墨用量
type InkUsage struct {
	InkType string `json:"ink_type"`
	Count   int    `json:"count"`
}

// PrintDesign 印刷设计稿
type PrintDesign struct {
	ID       string `json:"id"`
	Method   string `json:"method"`   // silkscreen | dtf
	Location string `json:"location"` // 印刷位置
	// 丝印专用
	Size        string     `json:"size,omitempty"` // 尺寸等级
	Colors      int        `json:"colors,omitempty"`
	SpecialInks []InkUsage `json:"special_inks,omitempty"`
	PlateType   string     `json:"plate_type,omitempty"`
	// DTF专用（成本由外部协作方计算）
	WidthMM  float64 `json:"width_mm,omitempty"`
	HeightMM float64 `json:"height_mm,omitempty"`
}

// IsSilkscreen 是否丝印设计稿
func (d *PrintDesign) IsSilkscreen() bool {
	return d.Method == MethodSilkscreen
}
