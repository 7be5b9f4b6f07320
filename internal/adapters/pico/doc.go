// Package pico provides the RP2040 hardware adapters used by the TinyGo
// firmware: a PWM buzzer as the tone output, the USB CDC serial port as the
// transport and a println logger. Everything but this file builds only with
// TinyGo.
package pico
