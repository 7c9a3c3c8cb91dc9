package config

// defaultINI is written on first launch. Category colors are
// base|light|dark triples; new categories cycle through them in order.
const defaultINI = `[GENERAL]
max_items = 8

[UICOLORS]
gr-0 = #2E2E2E
gr-2 = #4A4A4A
gr-3 = #E8E8E8
wh-1 = #FFFFFF
wh-2 = #F4F4F4
co-0 = #0087AF
co-1 = #005F87
dt-1 = #00AFD7

[CATCOLORS]
cor_001 = #9E9E9E|#E0E0E0|#616161
cor_002 = #42A5F5|#BBDEFB|#1565C0
cor_003 = #66BB6A|#C8E6C9|#2E7D32
cor_004 = #FFA726|#FFE0B2|#EF6C00
cor_005 = #AB47BC|#E1BEE7|#6A1B9A
cor_006 = #EC407A|#F8BBD0|#AD1457
cor_007 = #26C6DA|#B2EBF2|#00838F
cor_008 = #8D6E63|#D7CCC8|#4E342E

[UIICONS]
add-note = add-note.png
copy-note = copy-note.png
delete-note = delete-note.png
add-image = add-image.png
`
