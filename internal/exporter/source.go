package exporter

import (
	"fmt"
	"strings"

	"offsets-finder/internal/model"
	"offsets-finder/internal/textutil"
)

func writeSourceHeader(b *strings.Builder, variant model.Variant) {
	b.WriteString("// Auto-generated offsets\n")
	fmt.Fprintf(b, "// Tool: %s\n", ToolName)
	fmt.Fprintf(b, "// Game: %s\n\n", variant.Name())
}

// renderCppHeader emits a C++ header with one constexpr per found offset.
func renderCppHeader(results []model.Result, variant model.Variant) string {
	var b strings.Builder
	writeSourceHeader(&b, variant)
	b.WriteString("#pragma once\n")
	b.WriteString("#include <cstdint>\n\n")
	fmt.Fprintf(&b, "namespace %s {\n", variant.Namespace())

	eachByCategory(results,
		func(category string, first bool) {
			if !first {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "    // %s\n", category)
		},
		func(r model.Result) {
			if !r.Found {
				return
			}
			fmt.Fprintf(&b, "    constexpr uintptr_t %s = %s;\n", textutil.ConstantName(r.Name), r.Offset)
		},
	)

	b.WriteString("}\n")
	return b.String()
}

// renderRustModule emits a Rust module with one const per found offset.
func renderRustModule(results []model.Result, variant model.Variant) string {
	var b strings.Builder
	writeSourceHeader(&b, variant)
	b.WriteString("#![allow(dead_code)]\n\n")
	fmt.Fprintf(&b, "pub mod %s {\n", variant.Slug())

	eachByCategory(results,
		func(category string, first bool) {
			if !first {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "    // %s\n", category)
		},
		func(r model.Result) {
			if !r.Found {
				return
			}
			value := r.Offset
			if !strings.HasPrefix(strings.ToLower(value), "0x") {
				value = "0x" + value
			}
			fmt.Fprintf(&b, "    pub const %s: usize = %s;\n", textutil.ConstantName(r.Name, "-"), value)
		},
	)

	b.WriteString("}\n")
	return b.String()
}
