// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The stripetext package hides a short text message in a grayscale image
by modulating a periodic vertical stripe pattern, and recovers it again
by comparing the result with a regenerated copy of that pattern.

Encoding renders the carrier image as vertical bars whose thickness
follows local brightness, and blends in a stripe layer in which pixels
under the message ink use a half-period shifted copy of the key
pattern while background pixels use the unshifted one. The two regions
look near identical, but differ numerically by exactly the shift.

Decoding needs only the stripe period and type, not the original
image: it regenerates the key pattern from those parameters, takes the
absolute difference against the encoded image and stretches the
contrast, which makes the message stand out as a visible band. The
parameters travel as PNG text metadata alongside the pixels; see the
pngmeta package.

The scheme is steganographic, not cryptographic. Anyone who knows the
algorithm and the period can regenerate the key pattern.

The command line tools live under cmd: stripetext (encode and decode),
stripebatch (encode a directory of images), stripegraph (column
brightness profile chart) and stripepdf (contact sheet of the images
involved in an encode).
*/
package stripetext
