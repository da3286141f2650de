package gpif

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/gptab/model"
)

const fullTrackXML = `<?xml version="1.0"?>
<GPIF>
  <Score>
    <Title>Test Song</Title>
    <Artist>Test Artist</Artist>
    <Album>Test Album</Album>
  </Score>
  <MasterTrack>
    <Automations>
      <Automation>
        <Type>Tempo</Type>
        <Bar>0</Bar>
        <Value>140 2</Value>
      </Automation>
    </Automations>
  </MasterTrack>
  <Tracks>
    <Track id="t0">
      <Name>Guitar</Name>
      <ShortName>Gtr</ShortName>
      <Properties>
        <Property name="Tuning"><Pitches>40 45 50 55 59 64</Pitches></Property>
        <Property name="CapoFret">2</Property>
      </Properties>
    </Track>
  </Tracks>
  <MasterBars>
    <MasterBar>
      <Time>4/4</Time>
      <Key><AccidentalCount>2</AccidentalCount><Mode>Major</Mode></Key>
      <Section><Letter>A</Letter><Text>Verse</Text></Section>
      <Repeat start="true" end="false" count="0"/>
      <Bars>b0</Bars>
    </MasterBar>
  </MasterBars>
  <Bars>
    <Bar id="b0">
      <Voices>v0 -1 -1 -1</Voices>
    </Bar>
  </Bars>
  <Voices>
    <Voice id="v0">
      <Beats>beat0 beat1</Beats>
    </Voice>
  </Voices>
  <Beats>
    <Beat id="beat0">
      <Notes>n0</Notes>
      <Rhythm ref="r0"/>
      <Dynamic>F</Dynamic>
    </Beat>
    <Beat id="beat1">
      <Rhythm ref="r1"/>
    </Beat>
  </Beats>
  <Notes>
    <Note id="n0">
      <Properties>
        <Property name="String">0</Property>
        <Property name="Fret">3</Property>
        <Property name="Slide"><Flags>2</Flags></Property>
        <Property name="HarmonicType"><HType>Natural</HType></Property>
        <Property name="Bended"><Enable/></Property>
        <Property name="BendOriginValue"><Float>0</Float></Property>
        <Property name="BendMiddleValue"><Float>2</Float></Property>
        <Property name="BendDestinationValue"><Float>4</Float></Property>
        <Property name="PalmMuted"><Enable/></Property>
        <Property name="HopoOrigin"><Enable/></Property>
      </Properties>
      <LetRing/>
      <Vibrato/>
      <Tie origin="false" destination="true"/>
    </Note>
  </Notes>
  <Rhythms>
    <Rhythm id="r0">
      <NoteValue>Quarter</NoteValue>
      <PrimaryTuplet num="3" den="2"/>
      <AugmentationDot count="1"/>
    </Rhythm>
    <Rhythm id="r1">
      <NoteValue>Eighth</NoteValue>
    </Rhythm>
  </Rhythms>
</GPIF>`

func TestDecodeResolvesFullTrack(t *testing.T) {
	song, err := Decode([]byte(fullTrackXML))
	assert := assert.New(t)
	assert.NoError(err)
	if err != nil {
		return
	}

	assert.Equal("Test Song", song.Title)
	assert.Equal("Test Artist", song.Artist)
	assert.Equal("Test Album", song.Album)
	assert.Equal(140, song.Tempo)

	assert.Len(song.Tracks, 1)
	track := song.Tracks[0]
	assert.Equal("t0", track.ID)
	assert.Equal("Guitar", track.Name)
	assert.Equal("Gtr", track.ShortName)
	assert.Equal(2, track.CapoFret)
	assert.Equal([]int{64, 59, 55, 50, 45, 40}, track.TuningMidi)
	assert.Len(track.Tuning, 6)
	assert.Equal("E", track.Tuning[0].Name)
	assert.Equal("E", track.Tuning[5].Name)

	assert.Len(track.Bars, 1)
	bar := track.Bars[0]
	assert.Equal(model.TimeSignature{Numerator: 4, Denominator: 4}, bar.TimeSignature)
	assert.NotNil(bar.KeySignature)
	assert.Equal(2, bar.KeySignature.AccidentalCount)
	assert.Equal(model.Major, bar.KeySignature.Mode)
	assert.NotNil(bar.Section)
	assert.Equal("A", bar.Section.Letter)
	assert.Equal("Verse", bar.Section.Text)
	assert.True(bar.RepeatStart)
	assert.False(bar.RepeatEnd)

	assert.Len(bar.Beats, 2)
	beat0 := bar.Beats[0]
	assert.False(beat0.IsRest)
	assert.Equal(model.Quarter, beat0.Duration)
	assert.Equal(&model.Tuplet{Num: 3, Den: 2}, beat0.Tuplet)
	assert.Equal(1, beat0.Dotted)
	assert.Equal(140, beat0.Tempo)
	if assert.NotNil(beat0.Dynamic) {
		assert.Equal(1, *beat0.Dynamic)
	}

	assert.Len(beat0.Notes, 1)
	note := beat0.Notes[0]
	assert.Equal(5, note.String) // reversed: original string 0 of 6 -> 5
	assert.Equal(3, note.Fret)
	assert.Equal(9, note.PitchClass) // (40 + 2 + 3) mod 12
	assert.Equal("A", note.NoteName)
	if assert.NotNil(note.Slide) {
		assert.Equal(2, *note.Slide)
	}
	if assert.NotNil(note.Harmonic) {
		assert.Equal(model.HarmonicNatural, *note.Harmonic)
	}
	if assert.NotNil(note.Bend) {
		assert.Equal(model.Bend{Origin: 0, Destination: 4, Middle: 2}, *note.Bend)
	}
	assert.True(note.PalmMute)
	assert.True(note.HammerOn)
	assert.False(note.PullOff)
	assert.True(note.LetRing)
	assert.True(note.Vibrato)
	assert.False(note.Tie.Origin)
	assert.True(note.Tie.Destination)

	beat1 := bar.Beats[1]
	assert.True(beat1.IsRest)
	assert.Equal(model.Eighth, beat1.Duration)
	assert.Nil(beat1.Tuplet)
	assert.Equal(0, beat1.Dotted)
}

const capoFallbackXML = `<?xml version="1.0"?>
<GPIF>
  <Tracks>
    <Track id="t1">
      <Properties>
        <Property name="Tuning"><Pitches>40 45 50 55 59 64</Pitches></Property>
      </Properties>
    </Track>
  </Tracks>
  <MasterBars>
    <MasterBar>
      <Time>4/4</Time>
      <Bars>b1</Bars>
    </MasterBar>
  </MasterBars>
  <Bars>
    <Bar id="b1">
      <Voices>v1</Voices>
    </Bar>
  </Bars>
  <Voices>
    <Voice id="v1">
      <Beats>beat2</Beats>
    </Voice>
  </Voices>
  <Beats>
    <Beat id="beat2">
      <Notes>n1</Notes>
      <Rhythm ref="r2"/>
      <FreeText>Capo 5</FreeText>
    </Beat>
  </Beats>
  <Notes>
    <Note id="n1">
      <Properties>
        <Property name="String">0</Property>
        <Property name="Fret">0</Property>
      </Properties>
    </Note>
  </Notes>
  <Rhythms>
    <Rhythm id="r2">
      <NoteValue>Whole</NoteValue>
    </Rhythm>
  </Rhythms>
</GPIF>`

func TestDecodeFallsBackToFreeTextCapo(t *testing.T) {
	song, err := Decode([]byte(capoFallbackXML))
	assert := assert.New(t)
	assert.NoError(err)
	if err != nil {
		return
	}

	track := song.Tracks[0]
	assert.Equal(5, track.CapoFret)
	note := track.Bars[0].Beats[0].Notes[0]
	assert.Equal(9, note.PitchClass) // (40 + 5 + 0) mod 12
}

func TestDecodeRejectsInvalidXML(t *testing.T) {
	_, err := Decode([]byte("<not-closed"))
	assert.Error(t, err)
}

func TestNormalizeToUTF8PassesThroughUndeclaredEncoding(t *testing.T) {
	in := []byte(`<GPIF><Score><Title>Plain</Title></Score></GPIF>`)
	out, err := normalizeToUTF8(in)
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestNormalizeToUTF8TranscodesDeclaredLatin1(t *testing.T) {
	in := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><GPIF><Score><Title>`), 0xE9) // é in latin1
	in = append(in, []byte(`</Title></Score></GPIF>`)...)

	out, err := normalizeToUTF8(in)
	assert.NoError(t, err)
	assert.Contains(t, string(out), "é")
}

const instrumentXML = `<?xml version="1.0"?>
<GPIF>
  <Tracks>
    <Track id="t2">
      <Properties>
        <Property name="Tuning"><Pitches>40 45 50 55 59 64</Pitches></Property>
      </Properties>
      <Sounds>
        <Sound>
          <MIDI>
            <Program>29</Program>
          </MIDI>
        </Sound>
      </Sounds>
    </Track>
  </Tracks>
  <MasterBars>
    <MasterBar>
      <Time>4/4</Time>
      <Bars>b2</Bars>
    </MasterBar>
  </MasterBars>
  <Bars>
    <Bar id="b2">
      <Voices>v2</Voices>
    </Bar>
  </Bars>
  <Voices>
    <Voice id="v2">
      <Beats>beat3</Beats>
    </Voice>
  </Voices>
  <Beats>
    <Beat id="beat3">
      <Rhythm ref="r3"/>
    </Beat>
  </Beats>
  <Rhythms>
    <Rhythm id="r3">
      <NoteValue>Whole</NoteValue>
    </Rhythm>
  </Rhythms>
</GPIF>`

func TestDecodeResolvesInstrumentFromSoundsPath(t *testing.T) {
	song, err := Decode([]byte(instrumentXML))
	assert := assert.New(t)
	assert.NoError(err)
	if err != nil {
		return
	}

	track := song.Tracks[0]
	if assert.NotNil(track.Instrument) {
		assert.Equal(29, *track.Instrument)
	}
}

func TestDynamicToIntCentersOnMF(t *testing.T) {
	assert := assert.New(t)
	v, ok := dynamicToInt("MF")
	assert.True(ok)
	assert.Equal(0, v)

	v, ok = dynamicToInt("ff")
	assert.True(ok)
	assert.Equal(2, v)

	_, ok = dynamicToInt("not-a-dynamic")
	assert.False(ok)
}
