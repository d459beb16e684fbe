// Package schema provides the YAML page library format: parsing, validation,
// and descriptors for page types declared without Go code.
//
// # Schema Overview
//
//	version: "1"
//	package: shapes
//	pages:
//	  - name: shape
//	    abstract: true
//	    implements: [drawable]
//	    props:
//	      - name: label
//	        optional: true
//	  - name: circle
//	    extends: shape
//	    props:
//	      - name: r
//	        kind: float
//	        min: 0
//	      - name: center
//	        kind: page
//	        of: point
//	        source: {child: center}
//	      - name: note
//	        source: {text: true}
//
// # Sources
//
// A prop's source is either a bare attribute name or a mapping with exactly
// one of attr, child or text. It defaults to the attribute named like the
// prop. The kind defaults to string.
//
// Pages built from a schema are *page.Dynamic values holding each converted
// property under its name.
package schema
