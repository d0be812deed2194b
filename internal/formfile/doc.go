// Package formfile loads widget trees and key binding overrides from YAML.
//
// A form file looks like:
//
//	title: Preferences
//	collect_text: true
//	keys:
//	  ctrl+q: terminate
//	  down: advance_focus
//	children:
//	  - checkbox: Dark mode
//	    checked: true
//	  - slider: Volume
//	    min: 0
//	    max: 11
//	    value: 7
//	  - container: Account
//	    children:
//	      - textfield: Username
//	        placeholder: your name
//	      - button: Save
//	  - label: Press esc to finish
//
// Each node names its kind by the key that carries its label.
package formfile
