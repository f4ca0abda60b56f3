// Package web embeds the page templates, static assets and terms cards.
package web

import "embed"

//go:embed templates/*.html static/*
var Files embed.FS

//go:embed terms/*.md
var Terms embed.FS
