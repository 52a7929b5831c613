package utilcss

// Value tables consumed as read-only maps by registry matchers. These are
// data, not architecture: any table can be swapped without touching the
// pipeline.

// Breakpoint is a named responsive tier.
type Breakpoint struct {
	Name       string
	MinWidthPx int
	Order      int // ascending min-width, used for cascade bucketing
}

var defaultBreakpoints = map[string]Breakpoint{
	"sm":  {Name: "sm", MinWidthPx: 640, Order: 0},
	"md":  {Name: "md", MinWidthPx: 768, Order: 1},
	"lg":  {Name: "lg", MinWidthPx: 1024, Order: 2},
	"xl":  {Name: "xl", MinWidthPx: 1280, Order: 3},
	"2xl": {Name: "2xl", MinWidthPx: 1536, Order: 4},
}

// spacingScale maps scale keys to rem values (0.25rem base unit).
var spacingScale = map[string]string{
	"0":   "0px",
	"px":  "1px",
	"0.5": "0.125rem",
	"1":   "0.25rem",
	"1.5": "0.375rem",
	"2":   "0.5rem",
	"2.5": "0.625rem",
	"3":   "0.75rem",
	"3.5": "0.875rem",
	"4":   "1rem",
	"5":   "1.25rem",
	"6":   "1.5rem",
	"7":   "1.75rem",
	"8":   "2rem",
	"9":   "2.25rem",
	"10":  "2.5rem",
	"11":  "2.75rem",
	"12":  "3rem",
	"14":  "3.5rem",
	"16":  "4rem",
	"20":  "5rem",
	"24":  "6rem",
	"28":  "7rem",
	"32":  "8rem",
	"36":  "9rem",
	"40":  "10rem",
	"44":  "11rem",
	"48":  "12rem",
	"52":  "13rem",
	"56":  "14rem",
	"60":  "15rem",
	"64":  "16rem",
	"72":  "18rem",
	"80":  "20rem",
	"96":  "24rem",
}

// colorPalette maps palette keys to hex values.
var colorPalette = map[string]string{
	"inherit":     "inherit",
	"current":     "currentColor",
	"transparent": "transparent",
	"black":       "#000000",
	"white":       "#ffffff",

	"slate-50":  "#f8fafc",
	"slate-100": "#f1f5f9",
	"slate-200": "#e2e8f0",
	"slate-300": "#cbd5e1",
	"slate-400": "#94a3b8",
	"slate-500": "#64748b",
	"slate-600": "#475569",
	"slate-700": "#334155",
	"slate-800": "#1e293b",
	"slate-900": "#0f172a",

	"gray-50":  "#f9fafb",
	"gray-100": "#f3f4f6",
	"gray-200": "#e5e7eb",
	"gray-300": "#d1d5db",
	"gray-400": "#9ca3af",
	"gray-500": "#6b7280",
	"gray-600": "#4b5563",
	"gray-700": "#374151",
	"gray-800": "#1f2937",
	"gray-900": "#111827",

	"red-50":  "#fef2f2",
	"red-100": "#fee2e2",
	"red-200": "#fecaca",
	"red-300": "#fca5a5",
	"red-400": "#f87171",
	"red-500": "#ef4444",
	"red-600": "#dc2626",
	"red-700": "#b91c1c",
	"red-800": "#991b1b",
	"red-900": "#7f1d1d",

	"amber-400": "#fbbf24",
	"amber-500": "#f59e0b",
	"amber-600": "#d97706",

	"green-100": "#dcfce7",
	"green-400": "#4ade80",
	"green-500": "#22c55e",
	"green-600": "#16a34a",
	"green-700": "#15803d",

	"blue-50":  "#eff6ff",
	"blue-100": "#dbeafe",
	"blue-200": "#bfdbfe",
	"blue-300": "#93c5fd",
	"blue-400": "#60a5fa",
	"blue-500": "#3b82f6",
	"blue-600": "#2563eb",
	"blue-700": "#1d4ed8",
	"blue-800": "#1e40af",
	"blue-900": "#1e3a8a",

	"indigo-500": "#6366f1",
	"indigo-600": "#4f46e5",

	"purple-500": "#a855f7",
	"purple-600": "#9333ea",

	"pink-500": "#ec4899",
	"pink-600": "#db2777",
}

// fontSizeScale maps size keys to font-size plus line-height.
var fontSizeScale = map[string][2]string{
	"xs":   {"0.75rem", "1rem"},
	"sm":   {"0.875rem", "1.25rem"},
	"base": {"1rem", "1.5rem"},
	"lg":   {"1.125rem", "1.75rem"},
	"xl":   {"1.25rem", "1.75rem"},
	"2xl":  {"1.5rem", "2rem"},
	"3xl":  {"1.875rem", "2.25rem"},
	"4xl":  {"2.25rem", "2.5rem"},
	"5xl":  {"3rem", "1"},
	"6xl":  {"3.75rem", "1"},
}

var fontWeightScale = map[string]string{
	"thin":       "100",
	"extralight": "200",
	"light":      "300",
	"normal":     "400",
	"medium":     "500",
	"semibold":   "600",
	"bold":       "700",
	"extrabold":  "800",
	"black":      "900",
}

var radiusScale = map[string]string{
	"none": "0px",
	"sm":   "0.125rem",
	"":     "0.25rem", // bare "rounded"
	"md":   "0.375rem",
	"lg":   "0.5rem",
	"xl":   "0.75rem",
	"2xl":  "1rem",
	"3xl":  "1.5rem",
	"full": "9999px",
}

// shadowScale values read --un-shadow-color so a shadow-<color> utility on the
// same element recolors the shadow; the rgb() fallback is the default tint.
var shadowScale = map[string]string{
	"sm":    "0 1px 2px 0 var(--un-shadow-color, rgb(0 0 0 / 0.05))",
	"":      "0 1px 3px 0 var(--un-shadow-color, rgb(0 0 0 / 0.1)), 0 1px 2px -1px var(--un-shadow-color, rgb(0 0 0 / 0.1))",
	"md":    "0 4px 6px -1px var(--un-shadow-color, rgb(0 0 0 / 0.1)), 0 2px 4px -2px var(--un-shadow-color, rgb(0 0 0 / 0.1))",
	"lg":    "0 10px 15px -3px var(--un-shadow-color, rgb(0 0 0 / 0.1)), 0 4px 6px -4px var(--un-shadow-color, rgb(0 0 0 / 0.1))",
	"xl":    "0 20px 25px -5px var(--un-shadow-color, rgb(0 0 0 / 0.1)), 0 8px 10px -6px var(--un-shadow-color, rgb(0 0 0 / 0.1))",
	"2xl":   "0 25px 50px -12px var(--un-shadow-color, rgb(0 0 0 / 0.25))",
	"inner": "inset 0 2px 4px 0 var(--un-shadow-color, rgb(0 0 0 / 0.05))",
	"none":  "0 0 #0000",
}

// stateModifiers maps state modifier spellings to the pseudo-class each one
// appends to the selector.
var stateModifiers = map[string]string{
	"hover":         ":hover",
	"focus":         ":focus",
	"focus-within":  ":focus-within",
	"focus-visible": ":focus-visible",
	"active":        ":active",
	"visited":       ":visited",
	"disabled":      ":disabled",
	"checked":       ":checked",
	"required":      ":required",
	"empty":         ":empty",
	"first":         ":first-child",
	"last":          ":last-child",
	"odd":           ":nth-child(odd)",
	"even":          ":nth-child(even)",
}
