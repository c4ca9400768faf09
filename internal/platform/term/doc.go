// Package term adapts real terminals to the game: output devices that
// receive frame diffs and input sources that turn key presses into
// intents. Two flavours exist: a tcell screen for local play and a plain
// ANSI byte stream that works over any io.Writer/io.Reader pair, such as
// an SSH session or stdin/stdout in raw mode.
package term
