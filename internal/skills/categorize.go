package skills

import "strings"

// Category is one of the six fixed skill groupings used for reporting.
type Category string

// The closed category set. Reports always list categories in this order.
const (
	CategoryLanguages Category = "languages"
	CategoryTools     Category = "tools"
	CategoryProtocols Category = "protocols"
	CategoryPlatforms Category = "platforms"
	CategoryDrivers   Category = "drivers"
	CategoryOther     Category = "other"
)

// Categories lists every category in report order.
var Categories = []Category{
	CategoryLanguages,
	CategoryTools,
	CategoryProtocols,
	CategoryPlatforms,
	CategoryDrivers,
	CategoryOther,
}

// Exact-membership sets, keyed by canonical token.
var (
	languageSet = tokenSet(
		"c", "c++", "c#", "python", "java", "javascript", "typescript", "go",
		"rust", "ruby", "php", "scala", "kotlin", "swift", "r",
	)
	toolSet = tokenSet(
		"git", "gdb", "cmake", "make", "gcc", "clang", "vivado", "quartus",
		"jtag", "docker", "helm", "ansible",
	)
	protocolSet = tokenSet(
		"i2c", "spi", "uart", "gpio", "pcie", "usb", "ethernet", "can", "i2s",
		"wi-fi", "wifi", "lte", "bluetooth",
	)
	platformSet = tokenSet(
		"embedded linux", "yocto", "petalinux", "u-boot", "raspberry pi",
		"stm32", "arm", "nxp", "imx", "xilinx zynq", "xilinx rfsoc",
		"xilinx mpsoc",
	)
	driverSet = tokenSet(
		"kernel drivers", "device drivers", "driver development", "bootloader",
		"board bring-up", "bsp", "firmware", "kernel", "linux kernel",
	)
	otherHintSet = tokenSet(
		"linux", "bash", "shell", "systemd", "sysvinit", "excel", "tableau",
		"power bi", "etl", "spark", "hadoop",
	)
)

// substringRule assigns a category when the token contains any listed hint.
type substringRule struct {
	category Category
	hints    []string
}

// substringRules are evaluated in this exact order after the exact sets.
// The priority is fixed: a token containing both "linux" and "driver"
// resolves to drivers because the driver rule comes first.
var substringRules = []substringRule{
	{CategoryDrivers, []string{"driver", "kernel", "bootloader", "bsp", "board bring-up", "firmware"}},
	{CategoryPlatforms, []string{"linux", "embedded", "yocto", "petalinux", "u-boot"}},
	{CategoryTools, []string{"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible"}},
	{CategoryProtocols, []string{"i2c", "spi", "uart", "gpio", "usb", "ethernet", "can", "i2s", "bluetooth", "wi-fi"}},
	{CategoryLanguages, []string{"python", "java", "c++", "c#", "javascript", "typescript", "go", "rust"}},
}

// Categorize assigns a canonical token to a category. Exact membership is
// checked first, set by set, then the substring rules; the first match wins.
func Categorize(token string) Category {
	low := strings.ToLower(token)

	switch {
	case languageSet[low]:
		return CategoryLanguages
	case toolSet[low]:
		return CategoryTools
	case protocolSet[low]:
		return CategoryProtocols
	case platformSet[low]:
		return CategoryPlatforms
	case driverSet[low]:
		return CategoryDrivers
	case otherHintSet[low]:
		return CategoryOther
	}

	for _, rule := range substringRules {
		for _, hint := range rule.hints {
			if strings.Contains(low, hint) {
				return rule.category
			}
		}
	}

	return CategoryOther
}

func tokenSet(tokens ...string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
