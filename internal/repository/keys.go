// Package repository implements the collection repositories. Each collection
// is one ordered JSON array stored under a fixed key; every mutation is a
// read-modify-write of the whole array. That keeps the store contract trivial
// (get/set/delete on single keys) at the cost of last-write-wins races
// between concurrent writers, which is the documented concurrency policy.
package repository

const (
	KeyDocuments      = "documents"
	KeyStructureUI    = "structure:ui"
	KeyStructureAPI   = "structure:api"
	KeyCommunityPosts = "community:posts"
)
