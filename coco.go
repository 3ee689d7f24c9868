// Package coco provides a local, CLI-based search tool over a captioned-image
// dataset. It loads image metadata, captions and object-category annotations
// from disk and answers caption searches and per-image lookups.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, yaml/, inmem/).
package coco
