// Package directive classifies physical source lines into the single
// preprocessor construct that governs them.
//
// Classification follows a fixed precedence: block comments, line comments,
// #include, function-style #define, object-style #define, #undef, conditional
// directives, any other directive, and finally plain lines that contain an
// identifier and may therefore reference a macro. Conditional directives are
// recognised but never evaluated; every line is scanned regardless of the
// branch it sits in.
package directive
