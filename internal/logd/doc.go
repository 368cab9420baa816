// Package logd implements the host logging daemon that the Logd sink
// forwards to. It listens on Unix domain sockets, decodes wire records and
// renders them as console lines through a single writer, giving a
// multi-process pipeline one merged, per-record-interleaved log.
package logd
