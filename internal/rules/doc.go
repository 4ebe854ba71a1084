// Package rules contains the concrete framing rules and the default
// registry wiring.
//
// Each rule is self-contained and registered under a stable dotted ID
// ("wall.platform_frame"). Only platform wall framing ships today;
// balloon/advanced strategies and three_stud/california corner
// treatments are configuration-reserved extension points awaiting
// implementing rules.
package rules
