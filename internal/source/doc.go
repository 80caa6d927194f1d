// Package source loads flow-record sets from files.
//
// A record set is a document with two named time columns:
//
//	name: callback_latency
//	start_column: rclcpp_publish
//	end_column: callback_start
//	records:
//	  - {rclcpp_publish: 100, callback_start: 180}
//	  - {rclcpp_publish: 150, callback_start: 240}
//
// The same shape is accepted as YAML (.yaml, .yml), JSON (.json) and CUE
// (.cue). Records keep document order. A record lacking either column is
// skipped and counted; any other ill-formed value is an error.
package source
