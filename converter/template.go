package converter

// The interactive page. The payload is injected as the template dot
// inside the script tag.
const timetablePage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Semester planner</title>
<style>
  :root {
    --border: #d7dbe0;
    --muted: #6b7280;
    --accent: #2563eb;
  }
  body {
    margin: 0;
    font-family: system-ui, -apple-system, "Segoe UI", Roboto, Arial, sans-serif;
    background: #f5f6f8;
    color: #1f2937;
  }
  .layout { display: grid; grid-template-columns: 300px 1fr; height: 100vh; }
  .sidebar {
    border-right: 1px solid var(--border);
    background: #fff;
    padding: 14px;
    overflow: auto;
  }
  .hint { color: var(--muted); font-size: 12px; line-height: 1.4; margin: 0 0 12px; }
  .subject {
    display: grid;
    grid-template-columns: 16px 1fr;
    gap: 8px;
    padding: 8px;
    border: 1px solid var(--border);
    border-radius: 8px;
    margin-bottom: 8px;
  }
  .swatch { width: 13px; height: 13px; border-radius: 3px; margin-top: 4px; }
  .subject label { display: flex; gap: 8px; align-items: center; cursor: pointer; }
  .subject .name { font-weight: 600; font-size: 14px; }
  .subject .code { color: var(--muted); font-size: 12px; }
  .main { display: grid; grid-template-rows: auto 1fr auto; overflow: hidden; }
  .toolbar {
    display: flex; gap: 10px; align-items: center;
    padding: 10px 14px;
    border-bottom: 1px solid var(--border);
    background: #fff;
  }
  .toolbar .title { font-weight: 600; }
  .toolbar .meta { color: var(--muted); font-size: 12px; }
  .btn {
    padding: 7px 12px;
    background: #fff;
    border: 1px solid var(--border);
    border-radius: 6px;
    cursor: pointer;
  }
  .btn:hover { border-color: var(--accent); color: var(--accent); }
  .canvas-wrap { position: relative; overflow: auto; padding: 14px; }
  canvas { display: block; background: #fff; border: 1px solid var(--border); border-radius: 8px; }
  #tooltip {
    position: absolute;
    display: none;
    pointer-events: none;
    background: #1f2937;
    color: #f9fafb;
    border-radius: 6px;
    padding: 7px 9px;
    font-size: 12px;
    white-space: pre-line;
    max-width: 260px;
    z-index: 5;
  }
  .statusbar {
    padding: 8px 14px;
    border-top: 1px solid var(--border);
    color: var(--muted);
    font-size: 12px;
    background: #fff;
  }
  .statusbar .danger { color: #dc2626; }
</style>
</head>
<body>
<div class="layout">
  <aside class="sidebar">
    <p class="hint">Toggle subjects to show or hide their sections. Click a block to select or deselect it; overlapping picks are allowed. Export saves the selected schedule as a PNG.</p>
    <div id="subjectList"></div>
  </aside>
  <section class="main">
    <div class="toolbar">
      <div>
        <div class="title">Weekly timetable</div>
        <div class="meta" id="metaLine"></div>
      </div>
      <div style="flex:1"></div>
      <button class="btn" id="clearBtn">Clear selection</button>
      <button class="btn" id="exportBtn">Export PNG</button>
    </div>
    <div class="canvas-wrap">
      <canvas id="grid" width="1100" height="720"></canvas>
      <div id="tooltip"></div>
    </div>
    <div class="statusbar"><span id="statusText">Ready.</span></div>
  </section>
</div>
<script>
  const DATA = {{.}};

  const DAYS = DATA.meta.days.map(d => d.key);
  const START_MIN = DATA.meta.startMin;
  const END_MIN = DATA.meta.endMin;
  const subjects = DATA.subjects;
  const courses = DATA.courses.slice();

  const visibleSubjects = new Set(Object.keys(subjects));
  const selectedIds = new Set();

  const canvas = document.getElementById('grid');
  let ctx = canvas.getContext('2d');
  const tooltip = document.getElementById('tooltip');

  const G = {
    pad: 16,
    headerH: 32,
    timeColW: 64,
    dayColW: 196,
    gridStep: 30,
    blockPad: 5,
    laneGap: 5,
    corner: 8,
  };

  let hitboxes = [];
  let hoverId = null;

  function minuteToY(minute) {
    const usable = canvas.height - G.pad * 2 - G.headerH;
    return G.pad + G.headerH + (minute - START_MIN) / (END_MIN - START_MIN) * usable;
  }

  function fmtTime(min) {
    return String(Math.floor(min / 60)).padStart(2, '0') + ':' + String(min % 60).padStart(2, '0');
  }

  function esc(s) {
    return String(s)
      .replaceAll('&', '&amp;')
      .replaceAll('<', '&lt;')
      .replaceAll('>', '&gt;')
      .replaceAll('"', '&quot;');
  }

  function setStatus(text, danger) {
    const el = document.getElementById('statusText');
    el.textContent = text;
    el.className = danger ? 'danger' : '';
  }

  function buildSidebar() {
    const wrap = document.getElementById('subjectList');
    wrap.innerHTML = '';
    Object.values(subjects).forEach(sub => {
      const div = document.createElement('div');
      div.className = 'subject';
      const sw = document.createElement('div');
      sw.className = 'swatch';
      sw.style.background = sub.color;
      div.appendChild(sw);

      const label = document.createElement('label');
      const cb = document.createElement('input');
      cb.type = 'checkbox';
      cb.checked = true;
      cb.addEventListener('change', () => {
        if (cb.checked) visibleSubjects.add(sub.code);
        else visibleSubjects.delete(sub.code);
        render();
      });
      const text = document.createElement('div');
      text.innerHTML = '<div class="name">' + esc(sub.name) + '</div>' +
        '<div class="code">' + esc(sub.code) + ' · ' + sub.credits + ' credits</div>';
      label.appendChild(cb);
      label.appendChild(text);
      div.appendChild(label);
      wrap.appendChild(div);
    });
  }

  function truncate(text, maxW) {
    let t = String(text);
    if (ctx.measureText(t).width <= maxW) return t;
    while (t.length > 0 && ctx.measureText(t + '…').width > maxW) t = t.slice(0, -1);
    return t + '…';
  }

  function roundRect(x, y, w, h, r) {
    const rr = Math.min(r, w / 2, h / 2);
    ctx.beginPath();
    ctx.moveTo(x + rr, y);
    ctx.arcTo(x + w, y, x + w, y + h, rr);
    ctx.arcTo(x + w, y + h, x, y + h, rr);
    ctx.arcTo(x, y + h, x, y, rr);
    ctx.arcTo(x, y, x + w, y, rr);
    ctx.closePath();
  }

  function drawGrid() {
    ctx.clearRect(0, 0, canvas.width, canvas.height);
    ctx.fillStyle = '#fff';
    ctx.fillRect(0, 0, canvas.width, canvas.height);

    const x0 = G.pad + G.timeColW;
    const y1 = canvas.height - G.pad;

    ctx.font = '600 13px system-ui, sans-serif';
    ctx.fillStyle = '#374151';
    ctx.textBaseline = 'middle';

    for (let di = 0; di < DAYS.length; di++) {
      const x = x0 + di * G.dayColW;
      ctx.fillText(DATA.meta.days[di].label, x + 8, G.pad + G.headerH / 2);
      ctx.strokeStyle = '#e5e7eb';
      ctx.beginPath();
      ctx.moveTo(x, G.pad);
      ctx.lineTo(x, y1);
      ctx.stroke();
    }

    ctx.font = '12px system-ui, sans-serif';
    ctx.fillStyle = '#6b7280';
    ctx.textAlign = 'right';
    const first = Math.ceil(START_MIN / G.gridStep) * G.gridStep;
    for (let t = first; t <= END_MIN; t += G.gridStep) {
      const y = minuteToY(t);
      const hour = t % 60 === 0;
      ctx.strokeStyle = hour ? '#d7dbe0' : '#eef0f2';
      ctx.beginPath();
      ctx.moveTo(G.pad, y);
      ctx.lineTo(canvas.width - G.pad, y);
      ctx.stroke();
      if (hour) ctx.fillText(fmtTime(t), G.pad + G.timeColW - 8, y);
    }
    ctx.textAlign = 'left';
  }

  // Greedy interval partitioning: overlapping blocks share the column
  // width, one lane each.
  function assignLanes(dayCourses) {
    const sorted = dayCourses.slice().sort((a, b) => a.startMin - b.startMin || a.endMin - b.endMin);
    const laneEnds = [];
    const placed = [];
    for (const c of sorted) {
      let lane = laneEnds.findIndex(end => c.startMin >= end);
      if (lane === -1) {
        laneEnds.push(c.endMin);
        lane = laneEnds.length - 1;
      } else {
        laneEnds[lane] = c.endMin;
      }
      placed.push({course: c, lane: lane});
    }
    const lanes = laneEnds.length || 1;
    return placed.map(p => ({...p, lanes}));
  }

  function drawCourses(exportMode) {
    hitboxes = [];
    const x0 = G.pad + G.timeColW;

    for (let di = 0; di < DAYS.length; di++) {
      const day = DAYS[di];
      let dayCourses = courses.filter(c => c.day === day && visibleSubjects.has(c.subjectCode));
      if (exportMode) dayCourses = dayCourses.filter(c => selectedIds.has(c.id));

      for (const p of assignLanes(dayCourses)) {
        const c = p.course;
        const yStart = minuteToY(c.startMin);
        const h = Math.max(16, minuteToY(c.endMin) - yStart);
        const usableW = G.dayColW - 2 * G.blockPad;
        const laneW = (usableW - G.laneGap * (p.lanes - 1)) / p.lanes;
        const x = x0 + di * G.dayColW + G.blockPad + p.lane * (laneW + G.laneGap);
        const w = Math.max(28, laneW);
        const selected = selectedIds.has(c.id);

        ctx.save();
        ctx.globalAlpha = selected ? 0.9 : 0.3;
        ctx.fillStyle = subjects[c.subjectCode] ? subjects[c.subjectCode].color : '#9ca3af';
        roundRect(x, yStart, w, h, G.corner);
        ctx.fill();
        ctx.globalAlpha = 1;
        ctx.lineWidth = selected ? 2 : 1;
        ctx.strokeStyle = selected ? '#111827' : '#9ca3af';
        if (!selected && !exportMode) ctx.setLineDash([5, 4]);
        roundRect(x, yStart, w, h, G.corner);
        ctx.stroke();
        ctx.restore();

        ctx.save();
        ctx.fillStyle = '#111827';
        ctx.globalAlpha = selected ? 0.95 : 0.7;
        const pad = 8;
        const maxW = Math.max(12, w - pad * 2);
        ctx.font = '700 12px system-ui, sans-serif';
        ctx.fillText(truncate('(' + c.courseCode + ') ' + c.subjectName, maxW), x + pad, yStart + 14);
        ctx.font = '12px system-ui, sans-serif';
        ctx.fillText(truncate(c.subjectCode, maxW), x + pad, yStart + 29);
        if (h >= 56) {
          ctx.fillText(truncate(fmtTime(c.startMin) + '–' + fmtTime(c.endMin), maxW), x + pad, yStart + 44);
        }
        ctx.restore();

        if (!exportMode) hitboxes.push({id: c.id, x: x, y: yStart, w: w, h: h});
      }
    }
  }

  function render() {
    drawGrid();
    drawCourses(false);
    setStatus('Selected sections: ' + selectedIds.size + '.');
  }

  function courseAt(x, y) {
    for (let i = hitboxes.length - 1; i >= 0; i--) {
      const b = hitboxes[i];
      if (x >= b.x && x <= b.x + b.w && y >= b.y && y <= b.y + b.h) return b.id;
    }
    return null;
  }

  canvas.addEventListener('click', ev => {
    const rect = canvas.getBoundingClientRect();
    const id = courseAt(ev.clientX - rect.left, ev.clientY - rect.top);
    if (!id) return;
    const c = courses.find(cc => cc.id === id);
    if (selectedIds.has(id)) {
      selectedIds.delete(id);
      setStatus('Deselected ' + c.subjectCode + ' / ' + c.courseCode + '.');
    } else {
      selectedIds.add(id);
      setStatus('Selected ' + c.subjectCode + ' / ' + c.courseCode + '.');
    }
    render();
  });

  canvas.addEventListener('mousemove', ev => {
    const rect = canvas.getBoundingClientRect();
    const id = courseAt(ev.clientX - rect.left, ev.clientY - rect.top);
    if (!id) {
      tooltip.style.display = 'none';
      hoverId = null;
      return;
    }
    if (hoverId === id && tooltip.style.display === 'block') return;
    const c = courses.find(cc => cc.id === id);
    hoverId = id;
    tooltip.textContent = '(' + c.courseCode + ') ' + c.subjectName + '\n' +
      c.subjectCode + ' · ' + c.subjectCredits + ' credits\n' +
      fmtTime(c.startMin) + '–' + fmtTime(c.endMin);
    tooltip.style.display = 'block';
    const wrapRect = canvas.parentElement.getBoundingClientRect();
    tooltip.style.left = (ev.clientX - wrapRect.left + 12) + 'px';
    tooltip.style.top = (ev.clientY - wrapRect.top + 12) + 'px';
  });

  canvas.addEventListener('mouseleave', () => {
    tooltip.style.display = 'none';
    hoverId = null;
  });

  document.getElementById('clearBtn').addEventListener('click', () => {
    selectedIds.clear();
    setStatus('Cleared selection.');
    render();
  });

  document.getElementById('exportBtn').addEventListener('click', () => {
    if (selectedIds.size === 0) {
      setStatus('Nothing selected to export.', true);
      return;
    }
    const off = document.createElement('canvas');
    off.width = canvas.width;
    off.height = canvas.height;
    const saved = ctx;
    ctx = off.getContext('2d');
    drawGrid();
    drawCourses(true);
    ctx = saved;

    const a = document.createElement('a');
    a.href = off.toDataURL('image/png');
    a.download = 'timetable_' + DATA.meta.source.replace(/[^a-z0-9_-]+/gi, '_') + '.png';
    document.body.appendChild(a);
    a.click();
    a.remove();
    setStatus('Exported PNG.');
  });

  document.getElementById('metaLine').textContent =
    DATA.meta.source + ' · ' + fmtTime(START_MIN) + '–' + fmtTime(END_MIN);

  buildSidebar();
  render();
</script>
</body>
</html>
`
