package app

import "github.com/fatih/color"

var cyan = color.New(color.FgCyan, color.Bold).SprintFunc()
