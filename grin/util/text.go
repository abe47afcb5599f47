package util

import (
	"fmt"
	"regexp"
	"strings"
)

var indentRe = regexp.MustCompile("(?m)^")

func Indent(text string, indent string) string {
	if text == "" {
		return text
	}
	return indentRe.ReplaceAllString(text, indent)
}

func Hex(stream []uint8) string {
	if len(stream) == 0 {
		return "[]"
	}
	s := make([]string, len(stream))
	for i, b := range stream {
		s[i] = fmt.Sprintf("%02X", b)
	}
	return "[" + strings.Join(s, " ") + "]"
}

// Ratio は、圧縮率を百分率の文字列で返します。
func Ratio(compressed, original int64) string {
	if original == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(compressed)*100/float64(original))
}
