package sounds

const Theory = `
Writing model:
Phonemes are written down and translate to keys in the order they are written.
The keys of the assembled stroke must be in steno order.

Bare mnemonics resolve to the left bank until a vowel, an asterisk, a hyphen or a
right-bank mnemonic ("-d") is written, then to their right-bank variants ("t" becomes
"-t"). A slash starts a new stroke on the left bank.

When sound order and key order disagree:
1. Inversion: write the sounds in key order, brackets mark where the inversion happened.
2. Asterisk on a consonant: write the asterisk, then the plain sound.
3. Asterisk inside a vowel chord: every vowel chord has an asterisked variant ("ee*").
4. Anything else (overlaps, dropped or added keys): a custom pair "sound:KEYS", or a
   misstroke "!KEYS" / "!sound:KEYS". These work for any stroke but annotate the whole
   span at once.
`
