// Package config loads mission files.
//
// A mission file is YAML. It carries the graph (node coordinates and
// adjacency lists), the mission (start, checkpoints, resources, finish,
// guide paths) and optional search tuning:
//
//	start: "1"
//	checkpoints: ["3", "9", "7"]
//	resources: ["3", "9"]
//	required_resources: 2
//	bias_weight: 5
//	nodes:
//	  "1": [0, 0]
//	  "2": [100, 0]
//	edges:
//	  "1": [["2", 1]]
//	  "2": [["1", 1]]
//	guide_paths:
//	  "3": ["3", "6", "9"]
//
// Parse checks the schema with go-playground/validator tags, then checks
// cross references: the start, finish, checkpoints, resources and guide
// nodes must all be known nodes (a coordinate entry or an edge endpoint).
// Conditions that are legal but suspicious are reported by Warnings: an
// edge endpoint with no coordinates, two nodes sharing a point, or a
// checkpoint with no edge path from the start.
package config
